// Package config reads KLONDIKE_* settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/klondike/game"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Host            string        `env:"KLONDIKE_HOST"`
	Port            int           `env:"KLONDIKE_PORT"`
	Variant         string        `env:"KLONDIKE_VARIANT"`
	Cascades        int           `env:"KLONDIKE_CASCADES"`
	Draw            int           `env:"KLONDIKE_DRAW"`
	Shuffle         bool          `env:"KLONDIKE_SHUFFLE"`
	Debug           bool          `env:"KLONDIKE_DEBUG"`
	AllowedOrigins  []string      `env:"KLONDIKE_ALLOWED_ORIGINS"`
	AccessLog       bool          `env:"KLONDIKE_ACCESS_LOG"`
	ShutdownTimeout time.Duration `env:"KLONDIKE_SHUTDOWN_TIMEOUT"`
}

// Default is the configuration with nothing set
func Default() Config {
	return Config{
		Host:            "",
		Port:            8000,
		Variant:         game.Basic.String(),
		Cascades:        7,
		Draw:            3,
		Shuffle:         true,
		AccessLog:       true,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load overlays the environment on Default and validates the result
func Load() (Config, error) {
	cfg := Default()
	if err := envdecode.StrictDecode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := game.ParseVariant(c.Variant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.Cascades <= 0 {
		return fmt.Errorf("%w: cascades must be positive, got %d", ErrInvalidConfig, c.Cascades)
	}
	if c.Draw <= 0 {
		return fmt.Errorf("%w: draw must be positive, got %d", ErrInvalidConfig, c.Draw)
	}
	return nil
}

// GameVariant is the configured variant. Call after Validate.
func (c Config) GameVariant() game.Variant {
	v, _ := game.ParseVariant(c.Variant)
	return v
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
