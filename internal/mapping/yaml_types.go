package mapping

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"graph-loader/internal/match"
)

var (
	definitionKeys = []string{"name", "page", "id", "labels", "properties", "only_if", "from", "to"}
	resolverKeys   = []string{"column", "default", "type", "transform", "fixed"}
	sideKeys       = []string{"type", "id", "find"}
	predicateKeys  = []string{"args", "predicate"}
	transformKeys  = []string{"name", "lookup", "otherwise"}
)

// checkKeys rejects mapping keys outside known, suggesting the closest one.
func checkKeys(node *yaml.Node, where string, known []string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if slices.Contains(known, key.Value) {
			continue
		}

		msg := fmt.Sprintf("line %d: unknown %s key %q", key.Line, where, key.Value)
		if s := match.Suggest(key.Value, known); len(s) > 0 {
			msg += fmt.Sprintf(" (did you mean %q?)", s[0])
		}

		return errors.New(msg)
	}

	return nil
}

// --- DefinitionDef YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for DefinitionDef.
func (d *DefinitionDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected definition map, got %v", node.Line, kindName(node.Kind))
	}

	if err := checkKeys(node, "definition", definitionKeys); err != nil {
		return err
	}

	type plain DefinitionDef

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*d = DefinitionDef(p)
	d.Line = node.Line

	return nil
}

// --- SideDef YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for SideDef.
func (s *SideDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected endpoint map, got %v", node.Line, kindName(node.Kind))
	}

	if err := checkKeys(node, "endpoint", sideKeys); err != nil {
		return err
	}

	type plain SideDef

	return node.Decode((*plain)(s))
}

// --- PredicateDef YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for PredicateDef.
// Accepts a bare predicate name or {args: [...], predicate: name}.
func (p *PredicateDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*p = PredicateDef{Predicate: node.Value}
		return nil

	case yaml.MappingNode:
		if err := checkKeys(node, "only_if", predicateKeys); err != nil {
			return err
		}

		type plain PredicateDef

		return node.Decode((*plain)(p))

	default:
		return fmt.Errorf("line %d: expected predicate name or map, got %v", node.Line, kindName(node.Kind))
	}
}

// --- ResolverDef YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for ResolverDef.
// A scalar is a constant; a map is a column reference or {fixed: value}.
func (r *ResolverDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return err
		}

		*r = ResolverDef{Fixed: v, HasFixed: true, Line: node.Line}

		return nil

	case yaml.MappingNode:
		if err := checkKeys(node, "resolver", resolverKeys); err != nil {
			return err
		}

		type plain ResolverDef

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*r = ResolverDef(p)
		r.Line = node.Line

		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "fixed" {
				r.HasFixed = true
			}
		}

		return nil

	default:
		return fmt.Errorf("line %d: expected scalar or resolver map, got %v", node.Line, kindName(node.Kind))
	}
}

// --- ResolverDefs YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for ResolverDefs.
func (rs *ResolverDefs) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode, yaml.MappingNode:
		var r ResolverDef
		if err := node.Decode(&r); err != nil {
			return err
		}

		*rs = ResolverDefs{r}

		return nil

	case yaml.SequenceNode:
		out := make(ResolverDefs, len(node.Content))

		for i, item := range node.Content {
			if err := item.Decode(&out[i]); err != nil {
				return err
			}
		}

		*rs = out

		return nil

	default:
		return fmt.Errorf("line %d: expected resolver or list, got %v", node.Line, kindName(node.Kind))
	}
}

// --- TransformRef YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for TransformRef.
func (t *TransformRef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = TransformRef{Name: node.Value}
		return nil

	case yaml.MappingNode:
		if err := checkKeys(node, "transform", transformKeys); err != nil {
			return err
		}

		type plain TransformRef

		return node.Decode((*plain)(t))

	default:
		return fmt.Errorf("line %d: expected transform name or map, got %v", node.Line, kindName(node.Kind))
	}
}

// --- PropertyDefs YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for PropertyDefs. Mapping order
// is kept and repeated names are kept too, so validation can report them.
func (ps *PropertyDefs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected properties map, got %v", node.Line, kindName(node.Kind))
	}

	out := make(PropertyDefs, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		var r ResolverDef
		if err := val.Decode(&r); err != nil {
			return fmt.Errorf("property %q: %w", key.Value, err)
		}

		out = append(out, PropertyDef{Name: key.Value, Resolver: r, Line: key.Line})
	}

	*ps = out

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
