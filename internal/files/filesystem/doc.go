// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for file and directory operations, enabling
// testability through in-memory implementations while maintaining compatibility
// with the OS filesystem. The synchronizer reads source trees and manifests
// through these interfaces and persists manifests and backups through them.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances plus
//     read/write/stat primitives
//   - Directory: Represents a directory that can be traversed
//   - File: Represents an individual file with metadata and content
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//   - EmbedFileSystem: Read-only implementation over embed.FS for bundled templates
package filesystem
