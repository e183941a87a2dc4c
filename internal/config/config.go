// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/benbjohnson/cssengine/selector"
)

// DefaultMaxBody is the largest request body the server reads by default.
const DefaultMaxBody = 1 << 20

// ErrInvalidConfig is returned by Validate for any failing field.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Server struct {
		Addr    string `json:"addr" validate:"required"`
		MaxBody int64  `json:"max_body" validate:"gt=0"`
	} `json:"server"`
	Log struct {
		Level  string `json:"level" validate:"oneof=debug info warn error"`
		Format string `json:"format" validate:"oneof=json text"`
		Color  string `json:"color" validate:"oneof=auto always never"`
	} `json:"log"`
	Mode string `json:"mode" validate:"oneof=strict forgiving"`
}

func Load() *Config {
	cfg := &Config{}

	// Server configuration
	cfg.Server.Addr = getEnv("CSSC_ADDR", ":8080")
	cfg.Server.MaxBody = DefaultMaxBody
	if v, err := strconv.ParseInt(getEnv("CSSC_MAX_BODY", ""), 10, 64); err == nil {
		cfg.Server.MaxBody = v
	}

	// Logging configuration
	cfg.Log.Level = strings.ToLower(getEnv("CSSC_LOG_LEVEL", "info"))
	cfg.Log.Format = strings.ToLower(getEnv("CSSC_LOG_FORMAT", "text"))
	cfg.Log.Color = strings.ToLower(getEnv("CSSC_COLOR", "auto"))

	// Selector list mode
	cfg.Mode = strings.ToLower(getEnv("CSSC_MODE", "forgiving"))

	return cfg
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q constraint (got %v)", ErrInvalidConfig, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SelectorMode returns the configured selector list mode.
func (c *Config) SelectorMode() selector.Mode {
	if c.Mode == "strict" {
		return selector.Strict
	}
	return selector.Forgiving
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
