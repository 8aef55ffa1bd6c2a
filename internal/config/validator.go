package config

import (
	"fmt"
	"strings"

	"github.com/pulsekit/pulse/internal/errors"
	"github.com/pulsekit/pulse/internal/logging"
)

// validLogLevels returns the accepted (lowercase) log level names
func validLogLevels() []string {
	levels := make([]string, 0, len(logging.ValidLevels()))
	for _, l := range logging.ValidLevels() {
		levels = append(levels, strings.ToLower(l))
	}
	return levels
}

// Validate checks the Config for invalid values. It returns nil when the
// config is clean, otherwise an errors.ValidationErrors listing every
// failure found.
func (c *Config) Validate() error {
	var errs errors.ValidationErrors

	errs = append(errs, c.validateHub()...)
	errs = append(errs, c.validateLogging()...)
	errs = append(errs, c.validateDemo()...)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateHub validates the HubConfig
func (c *Config) validateHub() errors.ValidationErrors {
	var errs errors.ValidationErrors

	if c.Hub.Policy != "" && !IsValidPolicy(c.Hub.Policy) {
		errs = append(errs, errors.ValidationError{
			Field:   "hub.policy",
			Value:   c.Hub.Policy,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidPolicies(), ", ")),
		})
	}

	return errs
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() errors.ValidationErrors {
	var errs errors.ValidationErrors

	level := strings.ToLower(c.Logging.Level)
	if level != "" && logging.ParseLevel(level) != strings.ToUpper(level) {
		errs = append(errs, errors.ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels(), ", ")),
		})
	}

	if c.Logging.MaxSizeMB < 0 {
		errs = append(errs, errors.ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be non-negative",
		})
	}

	if c.Logging.MaxBackups < 0 {
		errs = append(errs, errors.ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errs
}

// validateDemo validates the DemoConfig
func (c *Config) validateDemo() errors.ValidationErrors {
	var errs errors.ValidationErrors

	if len(c.Demo.Subscribers) == 0 {
		errs = append(errs, errors.ValidationError{
			Field:   "demo.subscribers",
			Value:   c.Demo.Subscribers,
			Message: "must name at least one subscriber",
		})
	}
	for i, name := range c.Demo.Subscribers {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.ValidationError{
				Field:   fmt.Sprintf("demo.subscribers[%d]", i),
				Value:   name,
				Message: "must not be blank",
			})
		}
	}

	if len(c.Demo.States) == 0 {
		errs = append(errs, errors.ValidationError{
			Field:   "demo.states",
			Value:   c.Demo.States,
			Message: "must contain at least one state value",
		})
	}

	return errs
}
