package env

import "os"

// Get reads an environment variable, falling back when unset or empty. Used
// where envconfig is not available yet (logger bootstrap).
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
