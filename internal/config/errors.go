package config

import (
	"errors"
	"strings"
)

var (
	// ErrMissingConfiguration indicates that a required variable is unset
	// or empty. Match it with errors.Is; the concrete error is
	// *MissingConfigurationError.
	ErrMissingConfiguration = errors.New("missing configuration")

	// ErrInvalidServerConfigs indicates negative timeouts or intervals.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// MissingConfigurationError lists every required variable that was absent.
type MissingConfigurationError struct {
	Vars []string
}

func (e *MissingConfigurationError) Error() string {
	return ErrMissingConfiguration.Error() + ": " + strings.Join(e.Vars, ", ")
}

func (e *MissingConfigurationError) Unwrap() error {
	return ErrMissingConfiguration
}
