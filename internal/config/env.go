// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration.
type Config struct {
	HTTPAddr string `env:"RPGME_HTTP_ADDR" envDefault:":8080"`
	// PublicOrigin overrides the origin used in share links. When empty the
	// origin is taken from each request.
	PublicOrigin    string        `env:"RPGME_PUBLIC_ORIGIN"`
	CatalogPath     string        `env:"RPGME_CATALOG_PATH"     envDefault:"catalog.yaml"`
	TemplatesDir    string        `env:"RPGME_TEMPLATES_DIR"    envDefault:"templates"`
	StaticDir       string        `env:"RPGME_STATIC_DIR"       envDefault:"static"`
	ShareText       string        `env:"RPGME_SHARE_TEXT"       envDefault:"Check out my HAX avatar!"`
	ShutdownTimeout time.Duration `env:"RPGME_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the server configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
