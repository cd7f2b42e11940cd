package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bookings/internal/domain"
)

const checkAvailEnvPrefix = "CHECKAVAIL"

// CheckAvailConfig configures the terminal check-availability client.
type CheckAvailConfig struct {
	BaseURL   string `mapstructure:"base-url"`
	RoomID    string `mapstructure:"room"`
	CSRFToken string `mapstructure:"csrf-token"`
	Debug     bool   `mapstructure:"debug"`
}

// LoadCheckAvail reads flags from args, falling back to CHECKAVAIL_* env
// vars (CHECKAVAIL_BASE_URL, CHECKAVAIL_ROOM, ...) and then defaults.
func LoadCheckAvail(args []string) (*CheckAvailConfig, error) {
	fs := pflag.NewFlagSet("checkavail", pflag.ContinueOnError)
	fs.String("base-url", "http://localhost:8080", "availability service address")
	fs.String("room", string(domain.RoomGeneralsQuarters), "room to check: 1 (General's Quarters) or 2 (Major's Suite)")
	fs.String("csrf-token", "", "anti-forgery token; fetched from the service when empty")
	fs.Bool("debug", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(checkAvailEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	cfg := &CheckAvailConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode checkavail config: %w", err)
	}

	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base-url %q", cfg.BaseURL)
	}
	if !domain.RoomID(cfg.RoomID).Valid() {
		return nil, fmt.Errorf("room must be %s or %s, got %q", domain.RoomGeneralsQuarters, domain.RoomMajorsSuite, cfg.RoomID)
	}
	return cfg, nil
}
