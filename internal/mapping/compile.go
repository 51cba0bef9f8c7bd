package mapping

import (
	"fmt"

	"graph-loader/internal/value"
)

// Compile validates mf and turns it into a Specification. Named transforms
// and predicates are looked up in reg; a nil reg means the built-ins only.
// Validation errors are reported together and match ErrConfiguration.
func Compile(mf *MappingFile, reg *Registry) (*Specification, error) {
	if reg == nil {
		reg = NewRegistry()
	}

	diags := Validate(mf, reg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, diags.Err())
	}

	c := compiler{reg: reg}
	spec := NewSpecification()

	for i := range mf.Entities {
		d := &mf.Entities[i]

		opts, err := c.options(d)
		if err != nil {
			return nil, err
		}

		e, err := NewEntity(d.Name, opts...)
		if err != nil {
			return nil, err
		}

		spec.Add(e)
	}

	for i := range mf.Relationships {
		d := &mf.Relationships[i]

		opts, err := c.options(d)
		if err != nil {
			return nil, err
		}

		from, err := c.side(d.From)
		if err != nil {
			return nil, err
		}

		to, err := c.side(d.To)
		if err != nil {
			return nil, err
		}

		r, err := NewRelationship(d.Name, append(opts, From(from), To(to))...)
		if err != nil {
			return nil, err
		}

		spec.Add(r)
	}

	return spec, nil
}

type compiler struct {
	reg *Registry
}

func (c compiler) options(d *DefinitionDef) ([]Option, error) {
	var opts []Option

	page, err := c.resolver(d.Page)
	if err != nil {
		return nil, err
	}

	id, err := c.resolver(d.ID)
	if err != nil {
		return nil, err
	}

	opts = append(opts, Page(page), ID(id))

	labels, err := c.resolvers(d.Labels)
	if err != nil {
		return nil, err
	}

	opts = append(opts, Labels(labels...))

	for i := range d.Properties {
		p := &d.Properties[i]

		r, err := c.resolver(&p.Resolver)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", p.Name, err)
		}

		opts = append(opts, Property(p.Name, r))
	}

	if d.OnlyIf != nil {
		fn, _ := c.reg.Predicate(d.OnlyIf.Predicate)

		args, err := c.resolvers(d.OnlyIf.Args)
		if err != nil {
			return nil, err
		}

		opts = append(opts, OnlyIf(fn, args...))
	}

	return opts, nil
}

func (c compiler) side(s *SideDef) (Side, error) {
	if s == nil {
		return Side{}, nil
	}

	if s.Find != nil {
		key, err := c.resolver(s.Find)
		if err != nil {
			return Side{}, err
		}

		return Side{Find: key}, nil
	}

	id, err := c.resolver(s.ID)
	if err != nil {
		return Side{}, err
	}

	if s.Type.IsFixed() {
		if name, ok := s.Type.Fixed.(string); ok {
			return Side{StaticType: name, ID: id}, nil
		}
	}

	typ, err := c.resolver(s.Type)
	if err != nil {
		return Side{}, err
	}

	return Side{Type: typ, ID: id}, nil
}

// resolvers returns compiled resolvers as []any, ready for the variadic
// builder options.
func (c compiler) resolvers(defs ResolverDefs) ([]any, error) {
	out := make([]any, len(defs))

	for i := range defs {
		r, err := c.resolver(&defs[i])
		if err != nil {
			return nil, err
		}

		out[i] = r
	}

	return out, nil
}

func (c compiler) resolver(r *ResolverDef) (value.Resolver, error) {
	if r == nil {
		return nil, nil
	}

	if r.HasFixed {
		return value.Fixed(r.Fixed), nil
	}

	var opts []value.ColumnOption

	if r.Default != nil {
		opts = append(opts, value.WithDefault(r.Default))
	}

	if r.Type != "" {
		cast, err := value.ParseCast(r.Type)
		if err != nil {
			return nil, err
		}

		opts = append(opts, value.WithCast(cast))
	}

	if r.Transform != nil {
		fn, err := c.transform(r.Transform)
		if err != nil {
			return nil, err
		}

		opts = append(opts, value.WithTransform(fn))
	}

	return value.Column(*r.Column, opts...), nil
}

func (c compiler) transform(t *TransformRef) (value.TransformFunc, error) {
	if t.Name == "" {
		return Lookup(t.Lookup, t.Otherwise), nil
	}

	fn, ok := c.reg.Transform(t.Name)
	if !ok {
		return nil, fmt.Errorf("unknown transform %q", t.Name)
	}

	return fn, nil
}
