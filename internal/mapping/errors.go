package mapping

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigurationError.
var ErrConfiguration = errors.New("mapping: invalid configuration")

// ConfigurationError reports a definition missing a required resolver or
// carrying one it cannot use.
type ConfigurationError struct {
	// Scope of the offending definition.
	Scope ScopeType
	// Definition is the scope name, possibly empty for relationships.
	Definition string
	// Attribute names the offending attribute ("id", "from", ...).
	Attribute string
	// Reason is the human-readable problem.
	Reason string
}

// NewConfigurationError returns a ConfigurationError.
func NewConfigurationError(scope ScopeType, definition, attribute, reason string) *ConfigurationError {
	return &ConfigurationError{Scope: scope, Definition: definition, Attribute: attribute, Reason: reason}
}

// Error returns the error string.
func (e *ConfigurationError) Error() string {
	name := e.Definition
	if name == "" {
		name = "(anonymous)"
	}

	return fmt.Sprintf("mapping: %s %s: %s: %s", e.Scope, name, e.Attribute, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// IsConfiguration returns true if err is or wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}
