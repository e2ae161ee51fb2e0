package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/Temutjin2k/wtl-cabs/internal/domain/types"
	"github.com/Temutjin2k/wtl-cabs/pkg/configparser"
)

// Flags
var (
	modeFlag = flag.String("mode", string(types.SiteService), "application mode")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
	ErrEmptySecret     = errors.New("booking token secret must not be empty")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode types.ServiceMode `mapstructure:"-"`

		Service    ServiceConfig    `mapstructure:"service"`
		Server     ServerConfig     `mapstructure:"server"`
		PricingAPI PricingAPIConfig `mapstructure:"pricing_api"`
		Booking    BookingConfig    `mapstructure:"booking"`
		Landing    LandingConfig    `mapstructure:"landing"`
		RabbitMQ   RabbitMQConfig   `mapstructure:"rabbitmq"`
		WebSocket  WebSocketConfig  `mapstructure:"websocket"`
		Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	}

	ServiceConfig struct {
		Name     string `mapstructure:"name" default:"wtl-site"`
		Version  string `mapstructure:"version" default:"dev"`
		LogLevel string `mapstructure:"log_level" default:"DEBUG"`
	}

	ServerConfig struct {
		Host            string        `mapstructure:"host" default:"0.0.0.0"`
		Port            string        `mapstructure:"port" default:"8080"`
		ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `mapstructure:"write_timeout" default:"30s"`
		IdleTimeout     time.Duration `mapstructure:"idle_timeout" default:"60s"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"10s"`
	}

	PricingAPIConfig struct {
		URL     string        `mapstructure:"url" default:"https://api.worldtriplink.com/api/cab1"`
		Timeout time.Duration `mapstructure:"timeout" default:"10s"`
	}

	BookingConfig struct {
		InvoiceURL  string        `mapstructure:"invoice_url" default:"/booking/invoice"`
		TokenSecret string        `mapstructure:"token_secret" default:"supersecretkey"`
		QuoteTTL    time.Duration `mapstructure:"quote_ttl" default:"30m"`
		HandoffTTL  time.Duration `mapstructure:"handoff_ttl" default:"2h"`
	}

	LandingConfig struct {
		DefaultCity     string        `mapstructure:"default_city" default:"Cab-Service-Gondia"`
		CounterDuration time.Duration `mapstructure:"counter_duration" default:"2s"`
	}

	RabbitMQConfig struct {
		Enabled  bool   `mapstructure:"enabled" default:"false"`
		Host     string `mapstructure:"host" default:"localhost"`
		Port     string `mapstructure:"port" default:"5672"`
		User     string `mapstructure:"user" default:"guest"`
		Password string `mapstructure:"password" default:"guest"`
		Exchange string `mapstructure:"exchange" default:"reservation_topic"`
	}

	WebSocketConfig struct {
		PingInterval time.Duration `mapstructure:"ping_interval" default:"30s"`
		WriteTimeout time.Duration `mapstructure:"write_timeout" default:"10s"`
	}

	TelemetryConfig struct {
		Enabled bool `mapstructure:"enabled" default:"false"`
	}
)

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

// DefaultTokenSecret matches the token_secret default and must be overridden in production.
const DefaultTokenSecret = "supersecretkey"

// UsesDefaultSecret reports whether quote tokens are signed with DefaultTokenSecret.
func (c BookingConfig) UsesDefaultSecret() bool {
	return c.TokenSecret == DefaultTokenSecret
}

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading defaults, the yaml file and environment overrides into the config struct.
	if err := configparser.Load(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Parsing flags
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.Booking.TokenSecret == "" {
		return nil, ErrEmptySecret
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	cfg.Mode = types.ServiceMode(*modeFlag)

	return nil
}
