package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable read by the service.
	EnvPrefix = "PARCELTRACK"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "PARCELTRACK_DB_DSN"
	EnvDBHost = "PARCELTRACK_DB_HOST"
	EnvDBUser = "PARCELTRACK_DB_USER"
	EnvDBName = "PARCELTRACK_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Admin         AdminConfig
	Tracking      TrackingConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PARCELTRACK_APP_ENV" default:"dev"`
	Port         string `envconfig:"PARCELTRACK_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"PARCELTRACK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PARCELTRACK_LOG_WARN_STACK" default:"false"`

	// CORSOrigins extends the built-in allowed origin list (comma-separated).
	CORSOrigins []string `envconfig:"PARCELTRACK_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"PARCELTRACK_DB_DSN"`
	Driver string `envconfig:"PARCELTRACK_DB_DRIVER" default:"sqlite"`

	// SQLitePath is used when Driver is sqlite and no DSN is supplied.
	SQLitePath string `envconfig:"PARCELTRACK_SQLITE_PATH" default:"submissions.db"`

	LegacyHost     string `envconfig:"PARCELTRACK_DB_HOST"`
	LegacyPort     int    `envconfig:"PARCELTRACK_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"PARCELTRACK_DB_USER"`
	LegacyPassword string `envconfig:"PARCELTRACK_DB_PASSWORD"`
	LegacyName     string `envconfig:"PARCELTRACK_DB_NAME"`
	LegacySSLMode  string `envconfig:"PARCELTRACK_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PARCELTRACK_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PARCELTRACK_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PARCELTRACK_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PARCELTRACK_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the sqlite dialector should be used.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"PARCELTRACK_REDIS_URL"`
	Address      string        `envconfig:"PARCELTRACK_REDIS_ADDR"`
	Password     string        `envconfig:"PARCELTRACK_REDIS_PASSWORD"`
	DB           int           `envconfig:"PARCELTRACK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PARCELTRACK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PARCELTRACK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PARCELTRACK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PARCELTRACK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PARCELTRACK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all. The login
// rate limiter is skipped when it is not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"PARCELTRACK_JWT_SECRET" default:"your-super-secret-key-for-jwt-tokens"`
	Issuer            string `envconfig:"PARCELTRACK_JWT_ISSUER" default:"parceltrack"`
	ExpirationMinutes int    `envconfig:"PARCELTRACK_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// TokenTTL returns the access-token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type AdminConfig struct {
	Username string `envconfig:"PARCELTRACK_ADMIN_USERNAME" default:"admin"`
	Password string `envconfig:"PARCELTRACK_ADMIN_PASSWORD" default:"ghanapost2024"`

	// PasswordHash, when set, takes precedence over Password and is verified
	// as an argon2id hash so the plaintext never has to live in the env.
	PasswordHash string `envconfig:"PARCELTRACK_ADMIN_PASSWORD_HASH"`
}

type TrackingConfig struct {
	DefaultTargetDays int    `envconfig:"PARCELTRACK_TRACKING_DEFAULT_TARGET_DAYS" default:"60"`
	DefaultStatus     string `envconfig:"PARCELTRACK_TRACKING_DEFAULT_STATUS" default:"Order Placed"`
	DefaultLocation   string `envconfig:"PARCELTRACK_TRACKING_DEFAULT_LOCATION" default:"Shenzhen, China"`
}

type AuthRateLimitConfig struct {
	LoginWindow  time.Duration `envconfig:"PARCELTRACK_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIPLimit int           `envconfig:"PARCELTRACK_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PARCELTRACK_AUTO_MIGRATE" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	if db.IsSQLite() {
		db.DSN = db.SQLitePath
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
