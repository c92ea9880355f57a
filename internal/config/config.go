// Package config loads runtime settings from the environment.
//
// Keys map to upper-case env vars with dots replaced by underscores,
// e.g. listing.endpoint -> LISTING_ENDPOINT.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/harinagireddy-katta/DeKart/internal/http/validation"
	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
)

type Config struct {
	Addr     string  `mapstructure:"addr" validate:"required"`
	Env      string  `mapstructure:"app_env" validate:"oneof=development production test"`
	LogLevel string  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Listing  Listing `mapstructure:"listing"`
}

type Listing struct {
	Endpoint     string        `mapstructure:"endpoint" validate:"required,url"`
	Origin       string        `mapstructure:"origin" validate:"required,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	StrictStatus bool          `mapstructure:"strict_status"`
}

// ClientConfig converts the listing settings for products.NewClient.
func (l Listing) ClientConfig() products.ClientConfig {
	return products.ClientConfig{
		Endpoint:     l.Endpoint,
		Origin:       l.Origin,
		Timeout:      l.Timeout,
		StrictStatus: l.StrictStatus,
	}
}

// Level parses LogLevel; unknown values fall back to info.
func (c Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c Config) IsProduction() bool { return c.Env == "production" }

// SetDefaults registers every key so that env lookups reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("listing.endpoint", products.DefaultEndpoint)
	v.SetDefault("listing.origin", products.DefaultOrigin)
	v.SetDefault("listing.timeout", products.DefaultTimeout)
	v.SetDefault("listing.strict_status", false)
}

// New returns a viper instance wired to the environment.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	validate := validator.New()
	validate.RegisterTagNameFunc(validation.TagNameFunc("mapstructure"))
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %s", validation.FromStructError(err))
	}
	return cfg, nil
}
