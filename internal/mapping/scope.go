package mapping

//go:generate go tool stringer -type=ScopeType -linecomment -output=scopetype_string.go

// ScopeType tells entity definitions and records from relationship ones.
type ScopeType int

const (
	_ ScopeType = iota

	ScopeEntity       // entity
	ScopeRelationship // relationship
)

// LookupScope is the scope name given to deferred lookups. Entities cannot
// use it.
const LookupScope = "found"
