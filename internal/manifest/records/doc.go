// Package records implements the record-model synchronizer backend.
//
// Where the splice backend stages byte-offset edits against the original
// text, this backend decomposes the manifest at Load time into a structured
// line model: one line slice per editable section, separated by immutable
// interstitial chunks. Entries are records that own their line. Insertion
// appends a rendered line to a section, a path rewrite replaces one record's
// line, and Serialize is plain concatenation. Both backends produce
// byte-identical output for the same operations.
package records
