package value

import (
	"fmt"

	"graph-loader/internal/tabular"
)

// Resolver produces a value from a row. Row may be nil for resolvers that do
// not read cells, which is how page selectors are evaluated.
type Resolver interface {
	Resolve(row *tabular.Row) (any, error)
}

// TransformFunc post-processes a resolved value.
type TransformFunc func(v any) (any, error)

// ColumnResolver reads the cell at a 0-based position.
type ColumnResolver struct {
	position  int
	fallback  any
	cast      Cast
	transform TransformFunc
}

// ColumnOption configures a ColumnResolver.
type ColumnOption func(*ColumnResolver)

// WithDefault sets the value used when the cell is absent or empty.
func WithDefault(v any) ColumnOption {
	return func(c *ColumnResolver) { c.fallback = v }
}

// WithCast converts the (possibly defaulted) cell value before any transform.
func WithCast(cast Cast) ColumnOption {
	return func(c *ColumnResolver) { c.cast = cast }
}

// WithTransform sets the function applied last.
func WithTransform(fn TransformFunc) ColumnOption {
	return func(c *ColumnResolver) { c.transform = fn }
}

// Column returns a resolver for the cell at position.
func Column(position int, opts ...ColumnOption) *ColumnResolver {
	c := &ColumnResolver{position: position}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Position returns the configured 0-based column.
func (c *ColumnResolver) Position() int {
	return c.position
}

// Resolve implements Resolver.
func (c *ColumnResolver) Resolve(row *tabular.Row) (any, error) {
	v, ok := row.Cell(c.position)
	if !ok {
		v = c.fallback
	}

	if c.cast != nil {
		cast, err := c.cast.Apply(v)
		if err != nil {
			return nil, err
		}

		v = cast
	}

	if c.transform == nil {
		return v, nil
	}

	out, err := c.transform(v)
	if err != nil {
		return nil, fmt.Errorf("column %d transform: %w", c.position, err)
	}

	return out, nil
}

// FixedResolver returns a constant.
type FixedResolver struct {
	constant any
}

// Fixed returns a resolver that always yields v.
func Fixed(v any) *FixedResolver {
	return &FixedResolver{constant: v}
}

// Value returns the constant.
func (f *FixedResolver) Value() any {
	return f.constant
}

// Resolve implements Resolver.
func (f *FixedResolver) Resolve(*tabular.Row) (any, error) {
	return f.constant, nil
}

// Wrap returns v itself when it already is a Resolver, otherwise a Fixed
// resolver holding v.
func Wrap(v any) Resolver {
	if r, ok := v.(Resolver); ok {
		return r
	}

	return Fixed(v)
}

// WrapAll applies Wrap element-wise.
func WrapAll(vs ...any) []Resolver {
	out := make([]Resolver, len(vs))
	for i, v := range vs {
		out[i] = Wrap(v)
	}

	return out
}

// ResolveAll resolves each resolver against row, in order.
func ResolveAll(rs []Resolver, row *tabular.Row) ([]any, error) {
	out := make([]any, len(rs))

	for i, r := range rs {
		v, err := r.Resolve(row)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}
