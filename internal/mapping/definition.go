package mapping

import (
	"graph-loader/internal/tabular"
	"graph-loader/internal/value"
)

// Definition is the part shared by entity and relationship definitions.
type Definition interface {
	Scope() ScopeType
	Name() string
	Page() value.Resolver
	ID() value.Resolver
	Labels() []value.Resolver
	Properties() *PropertyMap
	Predicate() *Predicate
}

// PredicateFunc decides whether a row produces a record. It receives the
// resolved predicate arguments positionally.
type PredicateFunc func(args ...any) bool

// Predicate is a row filter: argument resolvers plus the function applied to
// their values.
type Predicate struct {
	Args []value.Resolver
	Fn   PredicateFunc
}

// Eval resolves the arguments against row and applies Fn.
func (p *Predicate) Eval(row *tabular.Row) (bool, error) {
	args, err := value.ResolveAll(p.Args, row)
	if err != nil {
		return false, err
	}

	return p.Fn(args...), nil
}

// Base holds the attributes every definition has.
type Base struct {
	name       string
	page       value.Resolver
	id         value.Resolver
	labels     []value.Resolver
	properties *PropertyMap
	predicate  *Predicate
}

// Name returns the scope name; entity records are indexed under it.
func (b *Base) Name() string { return b.name }

// Page returns the resolver yielding the sheet selector.
func (b *Base) Page() value.Resolver { return b.page }

// ID returns the id resolver.
func (b *Base) ID() value.Resolver { return b.id }

// Labels returns the label resolvers in declaration order.
func (b *Base) Labels() []value.Resolver {
	return append([]value.Resolver(nil), b.labels...)
}

// Properties returns the property resolvers.
func (b *Base) Properties() *PropertyMap { return b.properties }

// Predicate returns the row filter, or nil.
func (b *Base) Predicate() *Predicate { return b.predicate }

// Entity defines node records.
type Entity struct {
	Base
}

// Scope implements Definition.
func (*Entity) Scope() ScopeType { return ScopeEntity }

// Relationship defines edge records between two endpoints.
type Relationship struct {
	Base

	from Side
	to   Side
}

// Scope implements Definition.
func (*Relationship) Scope() ScopeType { return ScopeRelationship }

// From returns the source endpoint rule.
func (r *Relationship) From() Side { return r.from }

// To returns the target endpoint rule.
func (r *Relationship) To() Side { return r.to }

// Side tells how one endpoint of a relationship is found: through an
// extracted entity of a given type and id, or through an external find key.
type Side struct {
	// StaticType is the entity scope name fixed at definition time.
	StaticType string
	// Type resolves the entity scope name per row; a nil result falls back
	// to StaticType.
	Type value.Resolver
	// ID resolves the entity id per row.
	ID value.Resolver
	// Find resolves an external lookup key; when set it supersedes Type and ID.
	Find value.Resolver
}

// Static returns a side pointing at entities of a fixed type.
func Static(entityType string, id any) Side {
	return Side{StaticType: entityType, ID: value.Wrap(id)}
}

// Dynamic returns a side whose entity type is resolved per row.
func Dynamic(entityType, id any) Side {
	return Side{Type: value.Wrap(entityType), ID: value.Wrap(id)}
}

// Find returns a side matched by an external key.
func Find(key any) Side {
	return Side{Find: value.Wrap(key)}
}

// Deferred reports whether the side is matched by a find key.
func (s Side) Deferred() bool {
	return s.Find != nil
}

// Configured reports whether the side has either a find key or both a type
// and an id.
func (s Side) Configured() bool {
	if s.Find != nil {
		return true
	}

	return (s.StaticType != "" || s.Type != nil) && s.ID != nil
}
