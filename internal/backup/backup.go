package backup

import (
	"fmt"
	"strings"

	"github.com/vvka-141/pbxsync/internal/files/filesystem"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// Manager stores pre-mutation manifest copies next to the manifest itself.
// The backup path is the manifest path plus a configurable suffix.
type Manager struct {
	suffix     string
	fsProvider filesystem.FileSystemProvider
}

// NewManager creates a backup manager over the OS filesystem. An empty
// suffix falls back to the default.
func NewManager(suffix string) *Manager {
	return NewManagerWithFS(suffix, filesystem.NewOSFileSystem())
}

// NewManagerWithFS creates a backup manager with a custom filesystem
// provider. This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewManagerWithFS(suffix string, fsProvider filesystem.FileSystemProvider) *Manager {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if suffix == "" {
		suffix = pbxsync.DefaultBackupSuffix
	}
	if !strings.HasPrefix(suffix, ".") {
		suffix = "." + suffix
	}
	return &Manager{suffix: suffix, fsProvider: fsProvider}
}

// BackupPath returns the sibling path backups for manifestPath are kept at.
func (m *Manager) BackupPath(manifestPath string) string {
	return manifestPath + m.suffix
}

// Exists reports whether a backup for manifestPath is already present.
func (m *Manager) Exists(manifestPath string) (bool, error) {
	info, err := m.fsProvider.Stat(m.BackupPath(manifestPath))
	if err != nil {
		return false, nil
	}
	if info.IsDir() {
		return false, fmt.Errorf("backup path %s is a directory", m.BackupPath(manifestPath))
	}
	return true, nil
}

// Create writes content to the backup path for manifestPath and returns
// that path. Callers decide whether to create by checking Exists first.
func (m *Manager) Create(manifestPath string, content []byte) (string, error) {
	backupPath := m.BackupPath(manifestPath)
	if err := m.fsProvider.WriteFile(backupPath, content); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// Verify Manager implements the interface at compile time
var _ pbxsync.BackupManager = (*Manager)(nil)
