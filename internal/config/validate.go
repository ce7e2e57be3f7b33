package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// minSecretKeyLen is the shortest session signing secret accepted.
const minSecretKeyLen = 16

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// The session secret is checked by ValidateSecret where sessions are signed.
func (c *Config) Validate() error {
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be within [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %s)", c.Auth.SessionTTL)
	}
	if strings.TrimSpace(c.Auth.CookieName) == "" {
		return fmt.Errorf("auth.cookie_name is required")
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if c.Export.WrapWidth <= 0 {
		return fmt.Errorf("export.wrap_width must be > 0 (got %d)", c.Export.WrapWidth)
	}
	if strings.TrimSpace(c.Export.Filename) == "" {
		return fmt.Errorf("export.filename is required")
	}

	if strings.TrimSpace(c.Gemini.Model) == "" {
		return fmt.Errorf("gemini.model is required")
	}

	return nil
}

// ValidateSecret checks the session signing secret.
func (c AuthConfig) ValidateSecret() error {
	if len(c.SecretKey) < minSecretKeyLen {
		return fmt.Errorf("auth.secret_key must be at least %d characters (got %d)", minSecretKeyLen, len(c.SecretKey))
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	switch d.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverSQLite, DriverPostgres, d.Driver)
	}
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MaxOpenConns <= 0 {
		return fmt.Errorf("max_open_conns must be > 0 (got %d)", d.MaxOpenConns)
	}
	return nil
}
