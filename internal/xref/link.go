package xref

import (
	"fmt"

	"graph-loader/internal/mapping"
	"graph-loader/internal/record"
)

// FoundScope is the scope name of deferred lookups.
const FoundScope = mapping.LookupScope

// Side names a relationship endpoint.
type Side string

// Relationship sides, in resolution order.
const (
	SideFrom Side = "from"
	SideTo   Side = "to"
)

func (s Side) attr(suffix string) string {
	return string(s) + "_" + suffix
}

// Result is the output of Link.
type Result struct {
	// Entities are the input entity records, in order.
	Entities []*record.Record
	// Relationships are bound copies of the input relationship records.
	Relationships []*record.Record
	// Deferred holds one lookup per find side, in resolution order.
	Deferred []*record.Record
	// Index is the entity index Link built.
	Index *Index
}

// Option configures Link.
type Option func(*linker)

// WithDuplicates sets the policy for entities sharing a scope name and id.
func WithDuplicates(p DuplicatePolicy) Option {
	return func(l *linker) { l.policy = p }
}

// WithIDSource sets where deferred lookup ids come from.
func WithIDSource(src IDSource) Option {
	return func(l *linker) { l.ids = src }
}

type linker struct {
	policy DuplicatePolicy
	ids    IDSource
	index  *Index
}

// Link indexes entities and binds every relationship endpoint. It stops at
// the first side that is misconfigured (a *mapping.ConfigurationError) or
// names no indexed entity (an *UnresolvedEndpointError).
func Link(entities, relationships []*record.Record, opts ...Option) (*Result, error) {
	l := &linker{policy: Overwrite}
	for _, opt := range opts {
		opt(l)
	}

	if l.ids == nil {
		l.ids = NewRandomIDs(0)
	}

	index, err := BuildIndex(entities, l.policy)
	if err != nil {
		return nil, err
	}

	l.index = index

	res := &Result{
		Entities:      entities,
		Relationships: make([]*record.Record, 0, len(relationships)),
		Index:         index,
	}

	for _, rel := range relationships {
		from, err := l.endpoint(rel, SideFrom, res)
		if err != nil {
			return nil, err
		}

		to, err := l.endpoint(rel, SideTo, res)
		if err != nil {
			return nil, err
		}

		res.Relationships = append(res.Relationships, rel.Bind(from, to))
	}

	return res, nil
}

func (l *linker) endpoint(rel *record.Record, side Side, res *Result) (*record.Record, error) {
	view := record.NewView(rel)

	find, err := view.Get(side.attr("find"))
	if err != nil {
		return nil, err
	}

	if find != nil {
		found := l.deferred(rel, find)
		res.Deferred = append(res.Deferred, found)

		return found, nil
	}

	typ, err := view.Get(side.attr("type"))
	if err != nil {
		return nil, err
	}

	id, err := view.Get(side.attr("id"))
	if err != nil {
		return nil, err
	}

	typeName, _ := typ.(string)
	if typeName == "" || id == nil {
		return nil, fmt.Errorf("%s: %w", rel.Provenance, mapping.NewConfigurationError(
			mapping.ScopeRelationship, rel.ScopeName, string(side), "neither find nor (type, id) configured"))
	}

	node, hasType := l.index.Lookup(typeName, id)
	if node == nil {
		return nil, &UnresolvedEndpointError{
			Relationship: rel.ScopeName,
			Provenance:   rel.Provenance,
			Side:         side,
			Type:         typeName,
			ID:           id,
			MissingType:  !hasType,
		}
	}

	return node, nil
}

func (l *linker) deferred(rel *record.Record, key any) *record.Record {
	return &record.Record{
		Scope:      mapping.ScopeEntity,
		ScopeName:  FoundScope,
		ID:         l.ids.NextID(),
		Properties: []record.Property{{Name: "id", Value: key}},
		Provenance: rel.Provenance,
	}
}
