package mapping

import (
	"fmt"
	"slices"

	"graph-loader/internal/diagnostic"
	"graph-loader/internal/match"
	"graph-loader/internal/value"
)

// Validate checks a mapping file for structural problems and references to
// unknown casts, transforms, predicates and entity types. It never stops at
// the first finding.
func Validate(mf *MappingFile, reg *Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if reg == nil {
		reg = NewRegistry()
	}

	if mf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported mapping version %q (expected %q)", mf.Version, CurrentVersion), "", "version")
	}

	if len(mf.Entities) == 0 && len(mf.Relationships) == 0 {
		res.AddWarning("empty_mapping", "mapping declares no definitions", "", "")
	}

	v := &validator{res: res, reg: reg, entities: map[string]int{}}

	for i := range mf.Entities {
		v.entity(i, &mf.Entities[i])
	}

	names := make([]string, 0, len(v.entities))
	for i := range mf.Entities {
		if n := mf.Entities[i].Name; n != "" && !slices.Contains(names, n) {
			names = append(names, n)
		}
	}

	v.entityNames = names

	for i := range mf.Relationships {
		v.relationship(i, &mf.Relationships[i])
	}

	return res
}

type validator struct {
	res         *diagnostic.Diagnostics
	reg         *Registry
	entities    map[string]int
	entityNames []string
}

func (v *validator) entity(i int, d *DefinitionDef) {
	def := definitionLabel(ScopeEntity, i, d.Name)

	if d.Name == "" {
		v.res.AddError("missing_name", "entity name is required", def, "name")
	} else if d.Name == LookupScope {
		v.res.AddError("reserved_name",
			fmt.Sprintf("entity name %q is reserved for deferred lookups", d.Name), def, "name")
	} else {
		v.entities[d.Name]++
		if v.entities[d.Name] == 2 {
			v.res.AddInfo("shared_scope",
				fmt.Sprintf("entity %q is defined more than once; records share one index bucket", d.Name), def, "name")
		}
	}

	if d.ID == nil {
		v.res.AddError("missing_id", "id resolver is required", def, "id")
	}

	if d.From != nil || d.To != nil {
		v.res.AddError("unexpected_side", "endpoints are only valid on relationships", def, "from/to")
	}

	v.common(def, d)
}

func (v *validator) relationship(i int, d *DefinitionDef) {
	def := definitionLabel(ScopeRelationship, i, d.Name)

	v.common(def, d)
	v.side(def, "from", d.From)
	v.side(def, "to", d.To)
}

func (v *validator) common(def string, d *DefinitionDef) {
	if d.Page == nil {
		v.res.AddError("missing_page", "page selector is required", def, "page")
	} else {
		v.resolver(def, "page", d.Page)

		if d.Page.IsFixed() && !validPage(d.Page.Fixed) {
			v.res.AddError("invalid_page",
				fmt.Sprintf("page must be a sheet name or a 0-based index, got %v", d.Page.Fixed), def, "page")
		}
	}

	if d.ID != nil {
		v.resolver(def, "id", d.ID)
	}

	for i := range d.Labels {
		v.resolver(def, fmt.Sprintf("labels[%d]", i), &d.Labels[i])
	}

	seen := map[string]struct{}{}

	for i := range d.Properties {
		p := &d.Properties[i]
		attr := "properties." + p.Name

		if p.Name == "" {
			v.res.AddError("missing_property_name", "property name is empty", def, "properties")
			continue
		}

		if _, ok := seen[p.Name]; ok {
			v.res.AddError("duplicate_property", fmt.Sprintf("duplicate property %q", p.Name), def, attr)
			continue
		}

		seen[p.Name] = struct{}{}

		v.resolver(def, attr, &p.Resolver)
	}

	if d.OnlyIf != nil {
		v.predicate(def, d.OnlyIf)
	}
}

func (v *validator) predicate(def string, p *PredicateDef) {
	switch {
	case p.Predicate == "":
		v.res.AddError("missing_predicate", "only_if needs a predicate name", def, "only_if.predicate")
	default:
		if _, ok := v.reg.Predicate(p.Predicate); !ok {
			v.res.AddError("unknown_predicate", fmt.Sprintf("unknown predicate %q", p.Predicate), def, "only_if.predicate").
				Suggest(match.Suggest(p.Predicate, v.reg.PredicateNames())...)
		}
	}

	for i := range p.Args {
		v.resolver(def, fmt.Sprintf("only_if.args[%d]", i), &p.Args[i])
	}
}

func (v *validator) side(def, attr string, s *SideDef) {
	if s == nil {
		v.res.AddError("missing_side", "neither find nor (type, id) configured", def, attr)
		return
	}

	if s.Find != nil {
		v.resolver(def, attr+".find", s.Find)

		if s.Type != nil || s.ID != nil {
			v.res.AddWarning("find_supersedes", "find is set; type and id are ignored", def, attr)
		}

		return
	}

	if s.Type == nil || s.ID == nil {
		v.res.AddError("invalid_side", "neither find nor (type, id) configured", def, attr)
	}

	if s.ID != nil {
		v.resolver(def, attr+".id", s.ID)
	}

	if s.Type == nil {
		return
	}

	v.resolver(def, attr+".type", s.Type)

	if !s.Type.IsFixed() {
		return
	}

	name, ok := s.Type.Fixed.(string)
	if !ok || name == "" {
		v.res.AddError("invalid_side_type",
			fmt.Sprintf("endpoint type must be an entity name, got %v", s.Type.Fixed), def, attr+".type")

		return
	}

	if !slices.Contains(v.entityNames, name) {
		v.res.AddWarning("unknown_side_type",
			fmt.Sprintf("no entity definition named %q", name), def, attr+".type").
			Suggest(match.Suggest(name, v.entityNames)...)
	}
}

func (v *validator) resolver(def, attr string, r *ResolverDef) {
	switch {
	case r.Column != nil && r.HasFixed:
		v.res.AddError("conflicting_resolver", "column and fixed are mutually exclusive", def, attr)
		return
	case r.Column == nil && !r.HasFixed:
		v.res.AddError("empty_resolver", "resolver needs a column or a fixed value", def, attr)
		return
	}

	if r.HasFixed {
		if r.Type != "" || r.Transform != nil || r.Default != nil {
			v.res.AddWarning("fixed_with_options", "type, transform and default are ignored on fixed values", def, attr)
		}

		return
	}

	if *r.Column < 0 {
		v.res.AddError("invalid_column", fmt.Sprintf("column must be >= 0, got %d", *r.Column), def, attr)
	}

	if r.Type != "" {
		if _, err := value.ParseCast(r.Type); err != nil {
			v.res.AddError("unknown_cast", fmt.Sprintf("unknown cast type %q", r.Type), def, attr+".type").
				Suggest(match.Suggest(r.Type, value.CastNames())...)
		}
	}

	if r.Transform != nil {
		v.transform(def, attr+".transform", r.Transform)
	}
}

func (v *validator) transform(def, attr string, t *TransformRef) {
	switch {
	case t.Name != "" && t.Lookup != nil:
		v.res.AddError("conflicting_transform", "a transform is either a name or a lookup table", def, attr)
	case t.Name != "":
		if _, ok := v.reg.Transform(t.Name); !ok {
			v.res.AddError("unknown_transform", fmt.Sprintf("unknown transform %q", t.Name), def, attr).
				Suggest(match.Suggest(t.Name, v.reg.TransformNames())...)
		}
	case t.Lookup == nil:
		v.res.AddError("empty_transform", "transform needs a name or a lookup table", def, attr)
	}
}

func definitionLabel(scope ScopeType, i int, name string) string {
	if name == "" {
		return fmt.Sprintf("%s #%d", scope, i)
	}

	return fmt.Sprintf("%s %s", scope, name)
}

func validPage(v any) bool {
	switch p := v.(type) {
	case string:
		return p != ""
	case int:
		return p >= 0
	case uint64:
		return true
	case float64:
		return p >= 0 && p == float64(int(p))
	default:
		return false
	}
}
