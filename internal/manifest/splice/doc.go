// Package splice implements the text-splice synchronizer backend.
//
// The backend never rewrites the manifest wholesale. Load parses the text
// once, recording the byte offsets of every section boundary and path
// field. Mutations stage (offset, delete, insert) edits against those
// offsets, and Serialize applies them in a single ordered pass, so all
// untouched bytes are reproduced exactly and markers are never searched
// for again after parsing.
package splice
