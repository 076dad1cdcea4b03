package adminauth

import (
	"context"
	"fmt"
	"time"

	"github.com/kofiasare/parceltrack-backend/pkg/auth"
	"github.com/kofiasare/parceltrack-backend/pkg/config"
	pkgerrors "github.com/kofiasare/parceltrack-backend/pkg/errors"
	"github.com/kofiasare/parceltrack-backend/pkg/security"
)

// Service issues admin access tokens.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
	now   func() time.Time
}

// NewService builds the admin session issuer from config.
func NewService(admin config.AdminConfig, jwtCfg config.JWTConfig) (Service, error) {
	if admin.Username == "" {
		return nil, fmt.Errorf("admin username required")
	}
	if admin.Password == "" && admin.PasswordHash == "" {
		return nil, fmt.Errorf("admin password or password hash required")
	}
	return &service{admin: admin, jwt: jwtCfg, now: time.Now}, nil
}

// Login checks the configured credentials and mints a bearer token. A hashed
// admin password takes precedence over the plain one when both are set.
func (s *service) Login(_ context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Username and password required")
	}

	if !security.ConstantTimeEquals(username, s.admin.Username) {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
	}

	ok, err := s.verifyPassword(password)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify admin password")
	}
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
	}

	token, err := auth.MintAccessToken(s.jwt, s.now(), username)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}
	return token, nil
}

func (s *service) verifyPassword(password string) (bool, error) {
	if s.admin.PasswordHash != "" {
		return security.VerifyPassword(password, s.admin.PasswordHash)
	}
	return security.ConstantTimeEquals(password, s.admin.Password), nil
}
