// Package xref binds relationship records to the entity records they
// connect.
//
// Link first indexes every entity record under (scope name, id), then walks
// relationship records in order and resolves the from side before the to
// side. A side with a find key becomes a deferred lookup: a synthetic
// "found" entity that stands in for a node already present in the target
// graph. The first failure aborts the walk.
package xref
