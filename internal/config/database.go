// internal/config/database.go
package config

import (
	"fmt"
)

// DSN prefers the full DATABASE_URL connection string and falls back to the
// composed key/value form.
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Database, d.SSLMode,
	)
}
