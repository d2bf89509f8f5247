package loader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/pbxsync/internal/files/filesystem"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// Loader locates and reads the project manifest.
type Loader struct {
	fsProvider filesystem.FileSystemProvider
}

// NewLoader creates a manifest loader over the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFS(filesystem.NewOSFileSystem())
}

// NewLoaderWithFS creates a manifest loader with a custom filesystem
// provider. This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewLoaderWithFS(fsProvider filesystem.FileSystemProvider) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Loader{fsProvider: fsProvider}
}

// Resolve returns the manifest path to operate on: the explicit path when
// set, otherwise the one discovered under projectPath. An explicit path may
// point at the project bundle directory, in which case the manifest file
// inside it is used.
func (l *Loader) Resolve(projectPath, manifestPath string) (string, error) {
	if manifestPath == "" {
		return l.Discover(projectPath)
	}

	info, err := l.fsProvider.Stat(manifestPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", pbxsync.ErrManifestNotFound, manifestPath)
	}

	if info.IsDir() {
		candidate := filepath.Join(manifestPath, pbxsync.ManifestFileName)
		if _, err := l.fsProvider.Stat(candidate); err != nil {
			return "", fmt.Errorf("%w: %s contains no %s", pbxsync.ErrManifestNotFound, manifestPath, pbxsync.ManifestFileName)
		}
		return candidate, nil
	}

	return manifestPath, nil
}

// Discover locates the manifest under projectPath by looking for project
// bundle directories containing a manifest file. Exactly one bundle must
// match: none is a missing-manifest condition, more than one requires the
// caller to pass an explicit manifest path.
func (l *Loader) Discover(projectPath string) (string, error) {
	entries, err := l.fsProvider.ReadDir(projectPath)
	if err != nil {
		return "", fmt.Errorf("failed to read project directory %s: %w", projectPath, err)
	}

	var bundles []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasSuffix(entry.Name(), pbxsync.ProjectBundleSuffix) {
			bundles = append(bundles, entry.Name())
		}
	}
	sort.Strings(bundles)

	var manifests []string
	for _, bundle := range bundles {
		candidate := filepath.Join(projectPath, bundle, pbxsync.ManifestFileName)
		info, err := l.fsProvider.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		manifests = append(manifests, candidate)
	}

	switch len(manifests) {
	case 0:
		return "", fmt.Errorf("%w: no %s bundle with a %s file under %s",
			pbxsync.ErrManifestNotFound, pbxsync.ProjectBundleSuffix, pbxsync.ManifestFileName, projectPath)
	case 1:
		return manifests[0], nil
	default:
		return "", fmt.Errorf("%w: %d project bundles under %s, set the manifest path explicitly",
			pbxsync.ErrInvalidConfig, len(manifests), projectPath)
	}
}

// Load reads the manifest bytes at manifestPath.
func (l *Loader) Load(manifestPath string) ([]byte, error) {
	content, err := l.fsProvider.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", pbxsync.ErrManifestNotFound, manifestPath, err)
	}
	return content, nil
}

// Write replaces the manifest at manifestPath with content.
func (l *Loader) Write(manifestPath string, content []byte) error {
	if err := l.fsProvider.WriteFile(manifestPath, content); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", manifestPath, err)
	}
	return nil
}

// Verify Loader implements the interface at compile time
var _ pbxsync.ManifestStore = (*Loader)(nil)
