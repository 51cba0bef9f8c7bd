package mapping

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"graph-loader/internal/value"
)

// PropertyMap maps property names to resolvers, keeping declaration order.
type PropertyMap struct {
	m *orderedmap.OrderedMap[string, value.Resolver]
}

// NewPropertyMap returns an empty PropertyMap.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: orderedmap.New[string, value.Resolver]()}
}

// Set binds name to a resolver. Re-setting a name keeps its original
// position.
func (p *PropertyMap) Set(name string, r value.Resolver) {
	p.m.Set(name, r)
}

// Get returns the resolver bound to name.
func (p *PropertyMap) Get(name string) (value.Resolver, bool) {
	if p == nil {
		return nil, false
	}

	return p.m.Get(name)
}

// Len returns the number of properties.
func (p *PropertyMap) Len() int {
	if p == nil {
		return 0
	}

	return p.m.Len()
}

// Names returns property names in declaration order.
func (p *PropertyMap) Names() []string {
	if p == nil {
		return nil
	}

	names := make([]string, 0, p.m.Len())
	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Each calls fn for every property in declaration order and stops at the
// first error.
func (p *PropertyMap) Each(fn func(name string, r value.Resolver) error) error {
	if p == nil {
		return nil
	}

	for pair := p.m.Oldest(); pair != nil; pair = pair.Next() {
		if err := fn(pair.Key, pair.Value); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns an independent copy.
func (p *PropertyMap) Clone() *PropertyMap {
	out := NewPropertyMap()
	_ = p.Each(func(name string, r value.Resolver) error {
		out.Set(name, r)
		return nil
	})

	return out
}
