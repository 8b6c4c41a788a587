package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/seqkit/logger"
)

// Telemetry configures the optional OpenTelemetry export.
type Telemetry struct {
	Enabled         bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint        string  `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure        bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate      float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	IntervalSeconds int     `yaml:"interval_seconds" mapstructure:"interval_seconds" validate:"gte=0"`
}

// Settings contains the instrumentation configuration for an application
// embedding seqkit.
type Settings struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Telemetry   Telemetry     `yaml:"telemetry" mapstructure:"telemetry"`
}

// ApplyDefaults applies default values to the settings.
func (s *Settings) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "seqkit"
	}
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Telemetry.Endpoint == "" {
		s.Telemetry.Endpoint = "localhost:4318"
	}
	if s.Telemetry.SampleRate == 0 {
		s.Telemetry.SampleRate = 1.0
	}
	if s.Telemetry.IntervalSeconds == 0 {
		s.Telemetry.IntervalSeconds = 15
	}
	s.Logging.ApplyDefaults()
}

// Validate validates the settings using struct tags plus the logging
// section's own rules.
func (s *Settings) Validate() error {
	if err := getValidator().Struct(s); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(ve))
			for _, e := range ve {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", e.Field(), e.Tag()))
			}
			return fmt.Errorf("settings invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("settings invalid: %w", err)
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("settings invalid: %w", err)
	}
	return nil
}

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Use yaml tag names for field names in error messages.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}
