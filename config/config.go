// Package config loads campusplanner CLI settings from an optional config
// file, CAMPUS_* environment variables and bound command-line flags, in
// viper's precedence order (flag > env > file > default).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CAMPUS_LOG_LEVEL.
const EnvPrefix = "CAMPUS"

// Default values.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	configName       = "campusplanner"
)

// ErrInvalidConfig wraps a read, decode or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the decoded CLI configuration.
type Config struct {
	// Data is a campus YAML file; empty means the built-in sample.
	Data string    `mapstructure:"data"`
	Log  LogConfig `mapstructure:"log"`
}

// LogConfig selects the zerolog level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Loader owns a private viper instance so flags can be bound before Load.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment lookup set up.
func NewLoader() *Loader {
	v := viper.New()
	v.SetDefault("data", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Viper exposes the underlying instance for flag binding.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads path (or searches the working directory and
// $HOME/.campusplanner when path is empty), then decodes and validates the
// merged settings. A missing file is only an error when path is explicit.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName(configName)
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			l.v.AddConfigPath(home + "/.campusplanner")
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// Used returns the config file that was read, or "".
func (l *Loader) Used() string {
	return l.v.ConfigFileUsed()
}

// NewLogger builds a zerolog.Logger writing to w according to c.
func (c LogConfig) NewLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
