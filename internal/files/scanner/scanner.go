package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/pbxsync/internal/files/filesystem"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// Scanner discovers candidate source files under a project root. Files are
// matched against an extension allowlist; hidden directories, project
// bundles, and configured exclude directories are skipped.
// Scanner is safe for concurrent use by multiple goroutines as long as the
// provided fsProvider is also thread-safe.
type Scanner struct {
	extensions map[string]struct{}
	excluded   map[string]struct{}
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a source file scanner over the OS filesystem.
// Empty extensions fall back to the default allowlist; excludeDirs extend
// the always-excluded directory names.
func NewScanner(extensions, excludeDirs []string) *Scanner {
	return NewScannerWithFS(extensions, excludeDirs, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a source file scanner with a custom filesystem
// provider. This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(extensions, excludeDirs []string, fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	if len(extensions) == 0 {
		extensions = pbxsync.DefaultExtensions
	}
	extSet := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		extSet[strings.ToLower(ext)] = struct{}{}
	}

	exclSet := make(map[string]struct{}, len(pbxsync.DefaultExcludedDirs)+len(excludeDirs))
	for _, dir := range pbxsync.DefaultExcludedDirs {
		exclSet[dir] = struct{}{}
	}
	for _, dir := range excludeDirs {
		exclSet[dir] = struct{}{}
	}

	return &Scanner{
		extensions: extSet,
		excluded:   exclSet,
		fsProvider: fsProvider,
	}
}

// ScanDirectory recursively scans rootPath and returns the matching source
// files, sorted by relative path.
//
// Parameters:
//   - rootPath: Root directory to scan
//
// Returns:
//   - pbxsync.SourceScanResult: Scan results including files
//   - error: Any error encountered during scanning
func (s *Scanner) ScanDirectory(rootPath string) (pbxsync.SourceScanResult, error) {
	dir, err := s.fsProvider.Open(rootPath)
	if err != nil {
		return pbxsync.SourceScanResult{}, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []pbxsync.SourceFile

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		info := file.Info()
		if info.IsDir() {
			return nil
		}

		relPath := filepath.ToSlash(file.RelativePath())
		if s.skippedDir(relPath) {
			return nil
		}

		ext := path.Ext(relPath)
		if _, ok := s.extensions[strings.ToLower(ext)]; !ok {
			return nil
		}

		files = append(files, pbxsync.SourceFile{
			Path:      relPath,
			Name:      path.Base(relPath),
			Extension: ext,
			SizeBytes: info.Size(),
		})
		return nil
	})

	if err != nil {
		return pbxsync.SourceScanResult{}, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})

	return pbxsync.SourceScanResult{
		Files: files,
	}, nil
}

// skippedDir reports whether any directory segment of relPath is hidden,
// a project bundle, or on the exclude list. The file name segment itself
// is never filtered.
func (s *Scanner) skippedDir(relPath string) bool {
	segments := strings.Split(relPath, "/")
	for _, seg := range segments[:len(segments)-1] {
		if strings.HasPrefix(seg, ".") {
			return true
		}
		if strings.HasSuffix(seg, pbxsync.ProjectBundleSuffix) {
			return true
		}
		if _, ok := s.excluded[seg]; ok {
			return true
		}
	}
	return false
}

// Verify Scanner implements the interface at compile time
var _ pbxsync.SourceScanner = (*Scanner)(nil)
