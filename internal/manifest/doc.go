// Package manifest parses the build manifest into addressable record groups.
//
// The manifest is structured text: record sections are delimited by literal
// begin/end marker comments, and each entry is one line with a fixed field
// order. The package locates the sections the synchronizer edits (build
// files, file references, and the sources phase membership list), records
// their byte offsets, and parses their entries into typed records. Nothing
// outside those sections is modeled; the rest of the text is preserved
// byte for byte.
//
// Two backends build on this package: splice edits the raw text through
// offset bookkeeping, records reassembles the manifest from typed lines.
// Both produce identical output for the same mutations.
package manifest
