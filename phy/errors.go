// Package phy defines the contracts shared by the physical layer models.
package phy

import (
	"errors"
	"fmt"
)

// ErrConfiguration matches every ConfigurationError with errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ErrCapability matches every CapabilityError with errors.Is.
var ErrCapability = errors.New("capability error")

// ConfigurationError reports a static misconfiguration, such as an undefined
// mode key. Retrying the operation fails the same way.
type ConfigurationError struct {
	Component string
	Reason    string
}

// NewConfigurationError creates a ConfigurationError with a formatted
// reason.
func NewConfigurationError(
	component string,
	format string,
	args ...interface{},
) *ConfigurationError {
	return &ConfigurationError{
		Component: component,
		Reason:    fmt.Sprintf(format, args...),
	}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Reason)
}

// Is makes the error match ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// CapabilityError reports that the hardware cannot do what the configuration
// asks for, such as more spatial streams than antennas.
type CapabilityError struct {
	Component string
	Reason    string
}

// NewCapabilityError creates a CapabilityError with a formatted reason.
func NewCapabilityError(
	component string,
	format string,
	args ...interface{},
) *CapabilityError {
	return &CapabilityError{
		Component: component,
		Reason:    fmt.Sprintf(format, args...),
	}
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability error in %s: %s", e.Component, e.Reason)
}

// Is makes the error match ErrCapability.
func (e *CapabilityError) Is(target error) bool {
	return target == ErrCapability
}
