package record

import (
	"errors"
	"fmt"

	"graph-loader/internal/mapping"
)

// ErrUnknownProperty is matched by every *UnknownPropertyAccessError.
var ErrUnknownProperty = errors.New("record: unknown property")

// UnknownPropertyAccessError reports an attribute that is neither a
// recognized record attribute nor a declared property.
type UnknownPropertyAccessError struct {
	Attribute   string
	Scope       mapping.ScopeType
	ScopeName   string
	Suggestions []string
}

// Error returns the error string.
func (e *UnknownPropertyAccessError) Error() string {
	name := e.ScopeName
	if name == "" {
		name = "(anonymous)"
	}

	msg := fmt.Sprintf("record: unknown attribute %q on %s %s", e.Attribute, e.Scope, name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestions[0])
	}

	return msg
}

// Is reports whether target is ErrUnknownProperty.
func (e *UnknownPropertyAccessError) Is(target error) bool {
	return target == ErrUnknownProperty
}

// IsUnknownProperty returns true if err is or wraps an
// UnknownPropertyAccessError.
func IsUnknownProperty(err error) bool {
	var e *UnknownPropertyAccessError
	return errors.As(err, &e)
}
