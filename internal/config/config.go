// Package config loads the host configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// ReadHeader limits how long the server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the server waits for in-flight requests.
const Shutdown = 5 * time.Second

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	// ContentPath overrides the embedded catalog and is watched for edits.
	ContentPath string `env:"CONTENT_PATH"`

	Reveal RevealConfig `envPrefix:"REVEAL_"`
	SMTP   SMTPConfig
	Admin  AdminConfig `envPrefix:"ADMIN_"`
}

// RevealConfig is rendered onto the page for the browser client.
type RevealConfig struct {
	IntroDuration time.Duration `env:"INTRO_DURATION" envDefault:"6s"`
	ImageTimeout  time.Duration `env:"IMAGE_TIMEOUT" envDefault:"8s"`
	Strict        bool          `env:"STRICT" envDefault:"false"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"SMTP_PORT" envDefault:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
	// To is where contact form messages are delivered.
	To string `env:"TO_EMAIL" envDefault:"hello@example.com"`
}

// Configured reports whether credentials are present.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// Default admin credentials, kept in sync with the envDefault tags below.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type AdminConfig struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD" envDefault:"admin123"`
}

// UsingDefaults reports whether the built-in credentials are still in
// effect.
func (a AdminConfig) UsingDefaults() bool {
	return a.Username == DefaultAdminUsername || a.Password == DefaultAdminPassword
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Reveal.IntroDuration <= 0 || cfg.Reveal.ImageTimeout <= 0 {
		return Config{}, fmt.Errorf("reveal durations must be positive")
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
