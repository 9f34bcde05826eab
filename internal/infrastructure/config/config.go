package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/ireporter/api/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL                   string
	SessionTokenExpiry           time.Duration
	PasswordResetTokenExpiry     time.Duration
	EmailVerificationTokenExpiry time.Duration
	CookieSecure                 bool
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() *Config {
	return &Config{
		AppBaseURL:                   getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionTokenExpiry:           time.Hour * 24 * time.Duration(getEnvAsInt("JWT_EXPIRES_IN_DAYS", 90)),
		PasswordResetTokenExpiry:     time.Minute * time.Duration(getEnvAsInt("PASSWORD_RESET_TOKEN_EXPIRY_MINUTES", 10)),
		EmailVerificationTokenExpiry: time.Hour * time.Duration(getEnvAsInt("EMAIL_VERIFICATION_TOKEN_EXPIRY_HOURS", 24)),
		CookieSecure:                 getEnvAsBool("COOKIE_SECURE", false),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetSessionTokenExpiry returns the validity window of session tokens.
func (c *Config) GetSessionTokenExpiry() time.Duration {
	return c.SessionTokenExpiry
}

// GetPasswordResetTokenExpiry returns the expiry duration for password reset
// tokens.
func (c *Config) GetPasswordResetTokenExpiry() time.Duration {
	return c.PasswordResetTokenExpiry
}

// GetVerificationTokenExpiry returns the expiry duration for email
// verification tokens.
func (c *Config) GetVerificationTokenExpiry() time.Duration {
	return c.EmailVerificationTokenExpiry
}

// GetCookieSecure returns whether the session cookie requires HTTPS.
func (c *Config) GetCookieSecure() bool {
	return c.CookieSecure
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a
// default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
