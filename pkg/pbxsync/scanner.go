package pbxsync

// SourceFile describes one candidate source file found on disk.
// All paths use Unix-style forward slashes for cross-platform consistency.
type SourceFile struct {
	// Path is relative to the scan root: "Features/Home/HomeView.swift"
	Path string

	// Name is the base file name: "HomeView.swift"
	Name string

	// Extension includes the leading dot: ".swift"
	Extension string

	// SizeBytes is the file size in bytes
	SizeBytes int64
}

// SourceScanResult contains the results of scanning a project directory.
// Files are sorted by Path so downstream output is deterministic.
type SourceScanResult struct {
	Files []SourceFile
}

// SourceScanner defines the interface for enumerating candidate source
// files under a project root. Implementations apply the extension
// allowlist and skip hidden and build/cache directories.
type SourceScanner interface {
	// ScanDirectory recursively scans rootPath and returns the matching
	// source files, sorted by relative path.
	ScanDirectory(rootPath string) (SourceScanResult, error)
}
