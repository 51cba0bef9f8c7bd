package record

import (
	"graph-loader/internal/match"
)

// Recognized record attributes.
const (
	AttrID        = "id"
	AttrLabel     = "label"
	AttrPage      = "page"
	AttrScopeName = "scope_name"
	AttrFromID    = "from_id"
	AttrFromType  = "from_type"
	AttrFromFind  = "from_find"
	AttrToID      = "to_id"
	AttrToType    = "to_type"
	AttrToFind    = "to_find"
)

var (
	entityAttrs       = []string{AttrID, AttrLabel, AttrPage, AttrScopeName}
	relationshipAttrs = []string{
		AttrID, AttrLabel, AttrPage, AttrScopeName,
		AttrFromID, AttrFromType, AttrFromFind,
		AttrToID, AttrToType, AttrToFind,
	}
)

// View reads record attributes by name. Recognized attributes come first,
// then declared properties; anything else is an
// *UnknownPropertyAccessError.
type View struct {
	rec *Record
}

// NewView returns a View over r.
func NewView(r *Record) View {
	return View{rec: r}
}

// Get returns the named attribute or property. "label" yields the label
// list; "page" yields the sheet name.
func (v View) Get(attr string) (any, error) {
	r := v.rec

	switch attr {
	case AttrID:
		return r.ID, nil
	case AttrLabel:
		return append([]string(nil), r.Labels...), nil
	case AttrPage:
		return r.Provenance.Sheet, nil
	case AttrScopeName:
		return r.ScopeName, nil
	}

	if r.IsRelationship() {
		if val, ok := endpointAttr(r, attr); ok {
			return val, nil
		}
	}

	if val, ok := r.Property(attr); ok {
		return val, nil
	}

	return nil, &UnknownPropertyAccessError{
		Attribute:   attr,
		Scope:       r.Scope,
		ScopeName:   r.ScopeName,
		Suggestions: match.Suggest(attr, v.Names()),
	}
}

// Names lists every name Get accepts for this record.
func (v View) Names() []string {
	attrs := entityAttrs
	if v.rec.IsRelationship() {
		attrs = relationshipAttrs
	}

	return append(append([]string(nil), attrs...), v.rec.PropertyNames()...)
}

func endpointAttr(r *Record, attr string) (any, bool) {
	switch attr {
	case AttrFromID:
		return r.From.ID, true
	case AttrFromType:
		return r.From.Type, true
	case AttrFromFind:
		return r.From.Find, true
	case AttrToID:
		return r.To.ID, true
	case AttrToType:
		return r.To.Type, true
	case AttrToFind:
		return r.To.Find, true
	default:
		return nil, false
	}
}
