// Package mapping describes what to extract from a dataset: entity and
// relationship definitions built from value resolvers.
//
// Definitions can be assembled in Go with NewEntity / NewRelationship and
// functional options, or loaded from a YAML mapping file and compiled. Both
// paths produce the same immutable Definition values.
//
// # Schema Overview
//
//	version: "1"
//	entities:
//	  - name: staff
//	    page: staff                  # sheet name, or 0-based sheet index
//	    id: {column: 0}
//	    labels:
//	      - Staff                    # scalars are fixed values
//	      - column: 2
//	        transform:
//	          lookup: {director: MovieDirector}
//	          otherwise: ExecutiveProducer
//	    properties:                  # rendered in this order
//	      name: {column: 1}
//	      birthday: {column: 3, type: date}
//	    only_if:
//	      args: [{column: 1}]
//	      predicate: present
//	relationships:
//	  - name: HAS_POLITICAL_CHARGE
//	    page: "Cargo Político"
//	    from: {type: person, id: {column: 0}}        # static endpoint type
//	    to: {type: {column: 4}, id: {column: 5}}     # per-row endpoint type
//	    labels: [PoliticalCharge]
//
// A relationship side may instead name an external key with find:
//
//	    to: {find: {column: 6}}
//
// which matches an entity that already exists in the target graph instead of
// one extracted from the dataset.
//
// # Resolvers
//
// A resolver is either a scalar (a fixed value), {fixed: value}, or a column
// reader {column: N, default: D, type: date, transform: T}. T is the name of
// a registered transform or an inline lookup table.
//
// # Registry
//
// Transforms and predicates are referenced by name. NewRegistry comes with
// upper, lower, trim and string transforms and present, absent, equal,
// not_equal and truthy predicates; callers register their own Go functions.
package mapping
