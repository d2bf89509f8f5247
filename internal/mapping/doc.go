// Package mapping parses path-rewrite mappings from CLI flags and map files.
//
// A mapping pairs the exact path currently recorded in the manifest with
// the path that should replace it. Mappings arrive either as repeatable
// --rewrite OLD=NEW flags or as a map file with one OLD=NEW line per
// mapping. Both sources preserve input order; mappings are applied in the
// order they were given.
package mapping
