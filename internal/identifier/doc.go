// Package identifier allocates unique record identifiers for manifest entries.
//
// Manifest records reference each other by 24-character uppercase hex tokens.
// The allocator draws candidates from random UUIDs and verifies each one
// against the identifiers already present in the manifest plus everything
// issued during the current run, so a freshly allocated identifier can never
// collide with a live record.
package identifier
