package xref

import (
	"errors"
	"fmt"

	"graph-loader/internal/record"
)

var (
	// ErrUnresolvedEndpoint is matched by every *UnresolvedEndpointError.
	ErrUnresolvedEndpoint = errors.New("xref: unresolved endpoint")
	// ErrDuplicateEntity is matched by every *DuplicateEntityError.
	ErrDuplicateEntity = errors.New("xref: duplicate entity")
)

// UnresolvedEndpointError reports a relationship side whose (type, id) names
// no indexed entity.
type UnresolvedEndpointError struct {
	// Relationship is the scope name of the relationship, possibly empty.
	Relationship string
	// Provenance of the relationship record.
	Provenance record.Provenance
	// Side is "from" or "to".
	Side Side
	Type string
	ID   any
	// MissingType is set when no entity of Type was indexed at all.
	MissingType bool
}

// Error returns the error string.
func (e *UnresolvedEndpointError) Error() string {
	name := e.Relationship
	if name == "" {
		name = "(anonymous)"
	}

	if e.MissingType {
		return fmt.Sprintf("xref: relationship %s %s: %s endpoint: no entities of type %q",
			name, e.Provenance, e.Side, e.Type)
	}

	return fmt.Sprintf("xref: relationship %s %s: %s endpoint: no %s with id %#v",
		name, e.Provenance, e.Side, e.Type, e.ID)
}

// Is reports whether target is ErrUnresolvedEndpoint.
func (e *UnresolvedEndpointError) Is(target error) bool {
	return target == ErrUnresolvedEndpoint
}

// IsUnresolvedEndpoint returns true if err is or wraps an
// UnresolvedEndpointError.
func IsUnresolvedEndpoint(err error) bool {
	var e *UnresolvedEndpointError
	return errors.As(err, &e)
}

// DuplicateEntityError reports two entity records with the same scope name
// and id when duplicates are rejected.
type DuplicateEntityError struct {
	ScopeName string
	ID        any
	// First and Second are where the two records came from.
	First  record.Provenance
	Second record.Provenance
}

// Error returns the error string.
func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("xref: duplicate entity %s %#v at %s, first seen at %s",
		e.ScopeName, e.ID, e.Second, e.First)
}

// Is reports whether target is ErrDuplicateEntity.
func (e *DuplicateEntityError) Is(target error) bool {
	return target == ErrDuplicateEntity
}

// IsDuplicateEntity returns true if err is or wraps a DuplicateEntityError.
func IsDuplicateEntity(err error) bool {
	var e *DuplicateEntityError
	return errors.As(err, &e)
}
