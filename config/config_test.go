package config

import (
	"strings"
	"testing"
	"time"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Mode != "site" {
		t.Fatalf("expected default mode site, got %q", cfg.Mode)
	}
	if cfg.PricingAPI.URL != "https://api.worldtriplink.com/api/cab1" {
		t.Fatalf("unexpected pricing url %q", cfg.PricingAPI.URL)
	}
	if cfg.Booking.InvoiceURL != "/booking/invoice" {
		t.Fatalf("unexpected invoice url %q", cfg.Booking.InvoiceURL)
	}
	if cfg.Landing.CounterDuration != 2*time.Second {
		t.Fatalf("unexpected counter duration %v", cfg.Landing.CounterDuration)
	}
	if cfg.RabbitMQ.Enabled {
		t.Fatal("rabbitmq must be disabled by default")
	}
}

func TestNewConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("PRICING_API_TIMEOUT", "3s")

	cfg, err := NewConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr() != "0.0.0.0:9999" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr())
	}
	if cfg.PricingAPI.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.PricingAPI.Timeout)
	}
}

func TestLines_MasksSecrets(t *testing.T) {
	cfg, err := NewConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := strings.Join(Lines(cfg), "\n")
	if strings.Contains(out, cfg.Booking.TokenSecret) {
		t.Fatal("token secret leaked into printed config")
	}
	if !strings.Contains(out, "BOOKING_TOKEN_SECRET="+masked) {
		t.Fatalf("secret line missing:\n%s", out)
	}
	if !strings.Contains(out, "PRICING_API_URL=https://api.worldtriplink.com/api/cab1") {
		t.Fatalf("pricing url missing:\n%s", out)
	}
}

func TestBooking_UsesDefaultSecret(t *testing.T) {
	cfg, err := NewConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Booking.UsesDefaultSecret() {
		t.Fatalf("default secret %q must be reported", cfg.Booking.TokenSecret)
	}

	t.Setenv("BOOKING_TOKEN_SECRET", "rotated")
	cfg, err = NewConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Booking.UsesDefaultSecret() {
		t.Fatal("overridden secret reported as default")
	}
}

func TestRabbitDSN(t *testing.T) {
	c := RabbitMQConfig{User: "u", Password: "p", Host: "h", Port: "1"}
	if got := c.GetDSN(); got != "amqp://u:p@h:1/" {
		t.Fatalf("unexpected dsn %q", got)
	}
}
