// Package config defines the typed configuration structures shared across
// the application. Values are populated by the infrastructure config loader.
package config

import "fmt"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GetAddr returns the listen address in host:port form.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DatabaseConfig holds entitlement store connection settings.
// Driver selects between mysql (production) and sqlite (development/test).
type DatabaseConfig struct {
	Driver              string `mapstructure:"driver"`
	Host                string `mapstructure:"host"`
	Port                int    `mapstructure:"port"`
	Username            string `mapstructure:"username"`
	Password            string `mapstructure:"password"`
	Database            string `mapstructure:"database"`
	Path                string `mapstructure:"path"`
	MaxIdleConns        int    `mapstructure:"max_idle_conns"`
	MaxOpenConns        int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime     int    `mapstructure:"conn_max_lifetime"`
	QueryTimeoutSeconds int    `mapstructure:"query_timeout_seconds"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// SessionTokenConfig holds the shared signing secret for session credentials.
// The secret is process-wide and immutable for the process lifetime; rotating
// it invalidates every outstanding credential.
type SessionTokenConfig struct {
	Secret string `mapstructure:"secret"`
}

// AdminConfig holds administrative authentication settings.
type AdminConfig struct {
	PasswordHash    string `mapstructure:"password_hash"`
	TokenSecret     string `mapstructure:"token_secret"`
	TokenExpMinutes int    `mapstructure:"token_exp_minutes"`
}

// AuthConfig groups credential issuance and admin authentication settings.
type AuthConfig struct {
	SessionToken SessionTokenConfig `mapstructure:"session_token"`
	Admin        AdminConfig        `mapstructure:"admin"`
	KeyLength    int                `mapstructure:"key_length"`
}

// GoogleOAuthConfig holds settings for the Google identity verifier.
type GoogleOAuthConfig struct {
	ClientID string `mapstructure:"client_id"`
}

// OAuthConfig groups identity provider settings.
type OAuthConfig struct {
	Google GoogleOAuthConfig `mapstructure:"google"`
}

// RateLimitConfig holds fixed-window rate limit settings.
type RateLimitConfig struct {
	Requests      int `mapstructure:"requests"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

// RedisConfig holds Redis connection settings for rate limiting.
type RedisConfig struct {
	Enabled   bool            `mapstructure:"enabled"`
	Host      string          `mapstructure:"host"`
	Port      int             `mapstructure:"port"`
	Password  string          `mapstructure:"password"`
	DB        int             `mapstructure:"db"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// EmailConfig holds SMTP settings for license key delivery.
type EmailConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}
