package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Export    ExportConfig    `yaml:"export"`
	Log       LogConfig       `yaml:"log"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	MCP       MCPConfig       `yaml:"mcp"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds relational store settings.
// The default is a single SQLite file next to the binary.
type DatabaseConfig struct {
	Driver       string `yaml:"driver"         env:"DATABASE_DRIVER"         env-default:"sqlite"`
	DSN          string `yaml:"dsn"            env:"DATABASE_DSN"            env-default:"notes.db"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS" env-default:"10"`
}

// AuthConfig holds session and password settings.
type AuthConfig struct {
	SecretKey            string        `yaml:"secret_key"             env:"SECRET_KEY"`
	Issuer               string        `yaml:"issuer"                 env:"AUTH_ISSUER"              env-default:"ainotes"`
	SessionTTL           time.Duration `yaml:"session_ttl"            env:"AUTH_SESSION_TTL"         env-default:"2h"`
	CookieName           string        `yaml:"cookie_name"            env:"AUTH_COOKIE_NAME"         env-default:"session"`
	CookieSecure         bool          `yaml:"cookie_secure"          env:"AUTH_COOKIE_SECURE"       env-default:"false"`
	PasswordHashCost     int           `yaml:"password_hash_cost"     env:"AUTH_PASSWORD_HASH_COST"  env-default:"10"`
	DefaultAdminUsername string        `yaml:"default_admin_username" env:"ADMIN_USERNAME"           env-default:"admin"`
	DefaultAdminPassword string        `yaml:"default_admin_password" env:"ADMIN_PASSWORD"           env-default:"admin"`
}

// GeminiConfig holds settings for the text-generation service.
// An empty APIKey is allowed: summarization then stores a failure message.
type GeminiConfig struct {
	APIKey  string `yaml:"api_key"  env:"GEMINI_API_KEY"`
	Model   string `yaml:"model"    env:"GEMINI_MODEL"    env-default:"models/gemini-1.5-flash"`
	BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL" env-default:"https://generativelanguage.googleapis.com/v1beta"`
}

// ExportConfig holds PDF export settings.
type ExportConfig struct {
	Title        string `yaml:"title"         env:"EXPORT_TITLE"         env-default:"My notes"`
	SummaryLabel string `yaml:"summary_label" env:"EXPORT_SUMMARY_LABEL" env-default:"AI summary:"`
	Filename     string `yaml:"filename"      env:"EXPORT_FILENAME"      env-default:"notes.pdf"`
	FontPath     string `yaml:"font_path"     env:"EXPORT_FONT_PATH"`
	WrapWidth    int    `yaml:"wrap_width"    env:"EXPORT_WRAP_WIDTH"    env-default:"90"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
}

// MCPConfig controls the read-only MCP endpoint.
type MCPConfig struct {
	Enabled bool `yaml:"enabled" env:"MCP_ENABLED" env-default:"true"`
}

// RateLimitConfig limits credential submissions per client IP.
type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
}

// UsesDefaultAdminPassword reports whether the bootstrap account would be
// created with the shipped default password.
func (c AuthConfig) UsesDefaultAdminPassword() bool {
	return c.DefaultAdminPassword == "admin"
}

// String hides secrets when the config is logged.
func (c AuthConfig) String() string {
	return fmt.Sprintf("AuthConfig{Issuer:%s SessionTTL:%s CookieName:%s CookieSecure:%t}",
		c.Issuer, c.SessionTTL, c.CookieName, c.CookieSecure)
}
