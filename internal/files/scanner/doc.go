// Package scanner provides source file discovery for project synchronization.
//
// The scanner package is responsible for:
//   - Recursively discovering source files in a project tree
//   - Applying the configured extension allowlist
//   - Skipping hidden directories, project bundles, and build/cache
//     directories
//   - Returning results sorted by relative path for deterministic output
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
