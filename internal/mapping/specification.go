package mapping

import "strconv"

// Specification is an ordered set of definitions. Entities are always
// consumed before relationships; within each kind, declaration order holds.
type Specification struct {
	entities      []*Entity
	relationships []*Relationship
}

// NewSpecification groups definitions by kind, keeping their order.
func NewSpecification(defs ...Definition) *Specification {
	s := &Specification{}
	for _, d := range defs {
		s.Add(d)
	}

	return s
}

// Add appends a definition.
func (s *Specification) Add(d Definition) *Specification {
	switch def := d.(type) {
	case *Entity:
		s.entities = append(s.entities, def)
	case *Relationship:
		s.relationships = append(s.relationships, def)
	}

	return s
}

// Entities returns entity definitions in declaration order.
func (s *Specification) Entities() []*Entity {
	return append([]*Entity(nil), s.entities...)
}

// Relationships returns relationship definitions in declaration order.
func (s *Specification) Relationships() []*Relationship {
	return append([]*Relationship(nil), s.relationships...)
}

// Definitions returns all definitions, entities first.
func (s *Specification) Definitions() []Definition {
	out := make([]Definition, 0, len(s.entities)+len(s.relationships))
	for _, e := range s.entities {
		out = append(out, e)
	}

	for _, r := range s.relationships {
		out = append(out, r)
	}

	return out
}

// EntityNames returns the distinct entity scope names in declaration order.
func (s *Specification) EntityNames() []string {
	seen := make(map[string]struct{}, len(s.entities))

	var names []string

	for _, e := range s.entities {
		if _, ok := seen[e.name]; ok {
			continue
		}

		seen[e.name] = struct{}{}
		names = append(names, e.name)
	}

	return names
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
