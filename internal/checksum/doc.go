// Package checksum provides content digests for manifest change detection.
//
// Digests are computed over the exact bytes. The synchronizer hashes the
// manifest before and after mutation: identical digests mean the run was a
// no-op, differing digests identify exactly which runs changed the file.
// No normalization is applied because manifest comments carry record
// display names and are part of the tracked content.
//
// # Example Usage
//
//	calculator := checksum.New()
//	digest := calculator.Calculate(manifestContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
