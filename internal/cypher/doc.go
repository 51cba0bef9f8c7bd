// Package cypher renders cross-referenced records as a Cypher creation
// script.
//
// A script has an optional MATCH block holding the deferred lookups, then a
// CREATE block holding every entity followed by every relationship. Items
// are indented by two spaces and separated by ",\n"; the script ends with a
// line holding ";".
//
//	MATCH
//	  (found_17 {id: "uuid-1"})
//	CREATE
//	  (person_1:Politico {name: "Ann"}),
//	  (person_1)-[:KNOWS {}]->(found_17)
//	;
//
// Endpoints of a relationship are rendered by identity only. Properties
// holding nil are left out.
package cypher
