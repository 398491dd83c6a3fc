package config

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without zoneinfo

	"auction-front/utils"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds every runtime setting of the service
type Config struct {
	Port            uint16        `env:"PORT"             envDefault:"8080" validate:"min=1,max=65535"`
	GinMode         string        `env:"GIN_MODE"         envDefault:"release" validate:"oneof=debug release test"`
	CORSAllowOrigin string        `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info" validate:"oneof=trace debug info warn error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json text"`

	PaymentDelay        time.Duration `env:"PAYMENT_DELAY"         envDefault:"1s" validate:"gte=0"`
	PaymentCheckBalance bool          `env:"PAYMENT_CHECK_BALANCE" envDefault:"false"`
	PaymentFailureRate  float64       `env:"PAYMENT_FAILURE_RATE"  envDefault:"0" validate:"gte=0,lte=1"`

	InitialBalance   decimal.Decimal `env:"INITIAL_BALANCE"   envDefault:"100000"`
	AutoBidIncrement decimal.Decimal `env:"AUTOBID_INCREMENT" envDefault:"1"`

	Timezone string `env:"TIMEZONE" envDefault:"UTC" validate:"required"`

	UserID     string `env:"USER_ID"     envDefault:"user-1" validate:"required"`
	UserName   string `env:"USER_NAME"   envDefault:"John Doe"`
	UserAvatar string `env:"USER_AVATAR" envDefault:"https://via.placeholder.com/150"`

	MaxUploadBytes int    `env:"MAX_UPLOAD_BYTES" envDefault:"10485760" validate:"gt=0"`
	SeedFile       string `env:"SEED_FILE"`

	location *time.Location
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		utils.Debug(".env file not found", map[string]any{"error": err.Error()})
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		utils.Error("config_load_failed", map[string]any{"error": err.Error()})
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		utils.Error("config_validation_failed", map[string]any{"error": err.Error()})
		return nil, err
	}
	return cfg, nil
}

// FromMap builds a Config from the given variables only, ignoring the process environment
func FromMap(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	var errs []error
	if !c.AutoBidIncrement.IsPositive() {
		errs = append(errs, fmt.Errorf("AUTOBID_INCREMENT must be positive, got %s", c.AutoBidIncrement))
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	c.location = loc
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Location is the time zone calendar days are computed in
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}
