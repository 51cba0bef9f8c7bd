package record

import (
	"fmt"

	"graph-loader/internal/mapping"
)

// Property is one resolved property. Nil values are kept so the record
// reflects every declared property; rendering drops them.
type Property struct {
	Name  string
	Value any
}

// Provenance locates the row a record was produced from.
type Provenance struct {
	Sheet string
	Row   int
}

// String returns "[sheet:row]".
func (p Provenance) String() string {
	return fmt.Sprintf("[%s:%d]", p.Sheet, p.Row)
}

// Endpoint is one resolved side of a relationship record.
type Endpoint struct {
	// Type is the entity scope name the side points at.
	Type string
	// ID is the entity id the side points at.
	ID any
	// Find is the external lookup key of a deferred side.
	Find any
	// Deferred is set when the side is matched by Find.
	Deferred bool
	// Node is the bound entity record; nil until cross-referenced.
	Node *Record
}

// Record is the resolved output for one row.
type Record struct {
	Scope      mapping.ScopeType
	ScopeName  string
	ID         any
	Labels     []string
	Properties []Property
	Provenance Provenance

	// From and To are only meaningful on relationship records.
	From Endpoint
	To   Endpoint
}

// Property returns the value of the named property.
func (r *Record) Property(name string) (any, bool) {
	for _, p := range r.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}

	return nil, false
}

// PropertyNames returns property names in declaration order.
func (r *Record) PropertyNames() []string {
	names := make([]string, len(r.Properties))
	for i, p := range r.Properties {
		names[i] = p.Name
	}

	return names
}

// IsRelationship reports whether r is a relationship record.
func (r *Record) IsRelationship() bool {
	return r.Scope == mapping.ScopeRelationship
}

// Bind returns a copy of r whose endpoints point at from and to.
func (r *Record) Bind(from, to *Record) *Record {
	out := r.clone()
	out.From.Node = from
	out.To.Node = to

	return out
}

func (r *Record) clone() *Record {
	out := *r
	out.Labels = append([]string(nil), r.Labels...)
	out.Properties = append([]Property(nil), r.Properties...)

	return &out
}
