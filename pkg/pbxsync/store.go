package pbxsync

// ManifestStore locates, reads, and persists the manifest file. It is the
// only collaborator that touches the manifest on disk; the synchronizer
// backends operate purely in memory.
type ManifestStore interface {
	// Resolve returns the manifest path to operate on: the explicit path
	// when set, otherwise the one discovered under projectPath. An
	// explicit path may point at the project bundle directory.
	Resolve(projectPath, manifestPath string) (string, error)

	// Load reads the manifest bytes at manifestPath. Returns an error
	// wrapping ErrManifestNotFound when the file cannot be read.
	Load(manifestPath string) ([]byte, error)

	// Write replaces the manifest at manifestPath with content. Callers
	// create the backup before the first Write of a run.
	Write(manifestPath string, content []byte) error
}
