package mapping

// MappingFile is the declarative form of a Specification.
type MappingFile struct {
	// Version of the schema; defaults to "1".
	Version string `yaml:"version,omitempty"`
	// Entities are consumed first, in order.
	Entities []DefinitionDef `yaml:"entities,omitempty"`
	// Relationships are consumed after every entity.
	Relationships []DefinitionDef `yaml:"relationships,omitempty"`
}

// DefinitionDef describes one entity or relationship definition.
type DefinitionDef struct {
	// Name is the scope name. Required for entities.
	Name string `yaml:"name,omitempty"`
	// Page selects the sheet by name or 0-based index.
	Page *ResolverDef `yaml:"page,omitempty"`
	// ID resolves the record id.
	ID *ResolverDef `yaml:"id,omitempty"`
	// Labels accepts a single resolver or a list.
	Labels ResolverDefs `yaml:"labels,omitempty"`
	// Properties keeps the order of the YAML mapping.
	Properties PropertyDefs `yaml:"properties,omitempty"`
	// OnlyIf filters rows.
	OnlyIf *PredicateDef `yaml:"only_if,omitempty"`
	// From and To are relationship endpoints.
	From *SideDef `yaml:"from,omitempty"`
	To   *SideDef `yaml:"to,omitempty"`

	// Line is the source line of the definition, 0 when unknown.
	Line int `yaml:"-"`
}

// SideDef describes a relationship endpoint. Find supersedes Type and ID.
// A scalar string Type is a static entity type; any other Type is resolved
// per row.
type SideDef struct {
	Type *ResolverDef `yaml:"type,omitempty"`
	ID   *ResolverDef `yaml:"id,omitempty"`
	Find *ResolverDef `yaml:"find,omitempty"`
}

// PredicateDef references a registered predicate and its arguments.
type PredicateDef struct {
	Args      ResolverDefs `yaml:"args,omitempty"`
	Predicate string       `yaml:"predicate"`
}

// ResolverDef is either a scalar constant or a column reference:
//
//	page: staff
//	id: {column: 0}
//	birthday: {column: 2, type: date, default: ~}
//	label: {fixed: Person}
type ResolverDef struct {
	Column    *int          `yaml:"column,omitempty"`
	Default   any           `yaml:"default,omitempty"`
	Type      string        `yaml:"type,omitempty"`
	Transform *TransformRef `yaml:"transform,omitempty"`
	Fixed     any           `yaml:"fixed,omitempty"`

	// HasFixed is set when the constant form was used, so a nil constant
	// is distinguishable from an absent one.
	HasFixed bool `yaml:"-"`
	// Line is the source line, 0 when unknown.
	Line int `yaml:"-"`
}

// ResolverDefs is a list of resolvers that also accepts a single item.
type ResolverDefs []ResolverDef

// TransformRef names a registered transform, or holds an inline lookup
// table:
//
//	transform: upper
//	transform: {lookup: {director: MovieDirector}, otherwise: Producer}
type TransformRef struct {
	Name      string         `yaml:"name,omitempty"`
	Lookup    map[string]any `yaml:"lookup,omitempty"`
	Otherwise any            `yaml:"otherwise,omitempty"`
}

// PropertyDef is one named property resolver.
type PropertyDef struct {
	Name     string
	Resolver ResolverDef
	Line     int
}

// PropertyDefs is an ordered list of properties decoded from a YAML mapping.
type PropertyDefs []PropertyDef

// StaticDef returns a fixed resolver definition.
func StaticDef(v any) *ResolverDef {
	return &ResolverDef{Fixed: v, HasFixed: true}
}

// ColumnDef returns a column resolver definition.
func ColumnDef(position int) *ResolverDef {
	return &ResolverDef{Column: &position}
}

// IsFixed reports whether the definition is a constant.
func (r *ResolverDef) IsFixed() bool {
	return r != nil && r.HasFixed && r.Column == nil
}

// IsInline reports whether the transform is an inline lookup table.
func (t *TransformRef) IsInline() bool {
	return t != nil && t.Name == "" && t.Lookup != nil
}
