package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type FormConfig struct {
	BaseConfig
	Form FormSettings `envconfig:"FORM"`
}

type FormSettings struct {
	MaxSessions       int `envconfig:"MAX_SESSIONS" default:"10000"`
	PasswordMinLength int `envconfig:"PASSWORD_MIN_LENGTH" default:"6"`
	// PhoneMessage is shown when PhonePattern does not match and should quote a
	// matching example, so set both together.
	PhonePattern Pattern `envconfig:"PHONE_PATTERN" default:"^(809|829|849)\\d{7}$"`
	PhoneMessage string  `envconfig:"PHONE_MESSAGE" default:"format: 8095551234"`
	// Sessions untouched for SessionTTL are removed. Zero keeps them forever.
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	ExpiryInterval time.Duration `envconfig:"EXPIRY_INTERVAL" default:"1m"`
}

type Pattern struct {
	*regexp.Regexp
}

func (p *Pattern) Decode(value string) error {
	re, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", value, err)
	}
	p.Regexp = re
	return nil
}

func LoadForm() (*FormConfig, error) {
	var cfg FormConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Form.PasswordMinLength < 1 {
		return nil, fmt.Errorf("FORM_PASSWORD_MIN_LENGTH must be positive, got %d", cfg.Form.PasswordMinLength)
	}
	if cfg.Form.SessionTTL < 0 {
		return nil, fmt.Errorf("FORM_SESSION_TTL must not be negative, got %s", cfg.Form.SessionTTL)
	}
	if cfg.Form.SessionTTL > 0 && cfg.Form.ExpiryInterval <= 0 {
		return nil, fmt.Errorf("FORM_EXPIRY_INTERVAL must be positive, got %s", cfg.Form.ExpiryInterval)
	}
	return &cfg, nil
}
