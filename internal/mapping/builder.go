package mapping

import (
	"strconv"
	"strings"

	"graph-loader/internal/value"
)

// Option configures a definition under construction. Every argument typed
// any goes through value.Wrap, so constants and resolvers are interchangeable.
type Option func(*draft)

type draft struct {
	scope ScopeType
	base  Base

	from, to       Side
	hasFrom, hasTo bool

	errs []*ConfigurationError
}

func (d *draft) fail(attribute, reason string) {
	d.errs = append(d.errs, NewConfigurationError(d.scope, d.base.name, attribute, reason))
}

// Page sets the sheet selector: a sheet name, a 0-based index, or a resolver.
func Page(v any) Option {
	return func(d *draft) { d.base.page = value.Wrap(v) }
}

// ID sets the id resolver.
func ID(v any) Option {
	return func(d *draft) { d.base.id = value.Wrap(v) }
}

// Labels replaces the label resolvers.
func Labels(vs ...any) Option {
	return func(d *draft) { d.base.labels = value.WrapAll(vs...) }
}

// Property appends a property. Redefining a name replaces its resolver and
// keeps its position.
func Property(name string, v any) Option {
	return func(d *draft) {
		if strings.TrimSpace(name) == "" {
			d.fail("properties", "property name is empty")
			return
		}

		d.base.properties.Set(name, value.Wrap(v))
	}
}

// OnlyIf restricts records to rows for which fn returns true given the
// resolved args.
func OnlyIf(fn PredicateFunc, args ...any) Option {
	return func(d *draft) {
		if fn == nil {
			d.fail("only_if", "predicate function is nil")
			return
		}

		d.base.predicate = &Predicate{Args: value.WrapAll(args...), Fn: fn}
	}
}

// From sets the source endpoint rule of a relationship.
func From(s Side) Option {
	return func(d *draft) {
		d.from = s
		d.hasFrom = true
	}
}

// To sets the target endpoint rule of a relationship.
func To(s Side) Option {
	return func(d *draft) {
		d.to = s
		d.hasTo = true
	}
}

func newDraft(scope ScopeType, name string, opts []Option) *draft {
	d := &draft{scope: scope}
	d.base.name = name
	d.base.properties = NewPropertyMap()

	for _, opt := range opts {
		opt(d)
	}

	if d.base.page == nil {
		d.fail("page", "page selector is required")
	}

	for i, l := range d.base.labels {
		if l == nil {
			d.fail("labels", "label "+itoa(i)+" is nil")
		}
	}

	return d
}

func (d *draft) err() error {
	if len(d.errs) == 0 {
		return nil
	}

	return d.errs[0]
}

// NewEntity builds an entity definition. It fails with a
// *ConfigurationError when the name, page or id is missing, when the name is
// LookupScope, or when endpoint options are given.
func NewEntity(name string, opts ...Option) (*Entity, error) {
	d := newDraft(ScopeEntity, name, opts)

	if strings.TrimSpace(name) == "" {
		d.fail("name", "entity name is required")
	} else if name == LookupScope {
		d.fail("name", "entity name "+strconv.Quote(name)+" is reserved for deferred lookups")
	}

	if d.base.id == nil {
		d.fail("id", "id resolver is required")
	}

	if d.hasFrom || d.hasTo {
		d.fail("from/to", "endpoints are only valid on relationships")
	}

	if err := d.err(); err != nil {
		return nil, err
	}

	return &Entity{Base: d.base}, nil
}

// NewRelationship builds a relationship definition. Name and id may be
// empty. Each side must have a find key or both a type and an id.
func NewRelationship(name string, opts ...Option) (*Relationship, error) {
	d := newDraft(ScopeRelationship, name, opts)

	if d.base.id == nil {
		d.base.id = value.Fixed(nil)
	}

	if !d.from.Configured() {
		d.fail("from", "neither find nor (type, id) configured")
	}

	if !d.to.Configured() {
		d.fail("to", "neither find nor (type, id) configured")
	}

	if err := d.err(); err != nil {
		return nil, err
	}

	return &Relationship{Base: d.base, from: d.from, to: d.to}, nil
}

// MustEntity is NewEntity that panics on error, for static tables of
// definitions.
func MustEntity(name string, opts ...Option) *Entity {
	e, err := NewEntity(name, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

// MustRelationship is NewRelationship that panics on error.
func MustRelationship(name string, opts ...Option) *Relationship {
	r, err := NewRelationship(name, opts...)
	if err != nil {
		panic(err)
	}

	return r
}
