package services

import (
	"fmt"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// persistManifest writes the backup (first run only) and then the mutated
// manifest. The backup lands on disk before any manifest byte changes. The
// returned backup path is empty when a backup already existed.
func persistManifest(store pbxsync.ManifestStore, backups pbxsync.BackupManager, logger pbxsync.Logger, manifestPath string, original, output []byte) (string, error) {
	exists, err := backups.Exists(manifestPath)
	if err != nil {
		return "", fmt.Errorf("failed to check for an existing backup: %w", err)
	}

	var backupPath string
	if exists {
		logger.Verbose("Backup already present, keeping the first run's copy")
	} else {
		backupPath, err = backups.Create(manifestPath, original)
		if err != nil {
			return "", err
		}
		logger.Info("Backup written to %s", backupPath)
	}

	if err := store.Write(manifestPath, output); err != nil {
		return backupPath, err
	}
	return backupPath, nil
}
