package filesystem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_Basic(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	// Add some files
	mfs.AddFile("AppDelegate.swift", "import UIKit")
	mfs.AddFile("Views/HomeView.swift", "import SwiftUI")

	// Try to open the root directory
	dir, err := mfs.Open("/test/project")
	require.NoError(t, err, "Failed to open root directory")
	require.NotNil(t, dir)

	// Verify we can walk the directory
	var fileCount int
	err = dir.Walk(func(file File, err error) error {
		require.NoError(t, err)
		if !file.Info().IsDir() {
			fileCount++
			t.Logf("Found file: %s (rel: %s)", file.Path(), file.RelativePath())
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, fileCount, "Expected 2 files")
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	// Add a file
	expectedContent := "import UIKit"
	mfs.AddFile("AppDelegate.swift", expectedContent)

	// Read it back
	content, err := mfs.ReadFile("/test/project/AppDelegate.swift")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))
}

func TestMemoryFileSystem_WriteFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	err := mfs.WriteFile("App.xcodeproj/project.pbxproj", []byte("// !$*UTF8*$!\n"))
	require.NoError(t, err)

	content, err := mfs.ReadFile("/test/project/App.xcodeproj/project.pbxproj")
	require.NoError(t, err)
	require.Equal(t, "// !$*UTF8*$!\n", string(content))

	// Overwrite replaces the previous content
	err = mfs.WriteFile("App.xcodeproj/project.pbxproj", []byte("updated"))
	require.NoError(t, err)

	content, err = mfs.ReadFile("App.xcodeproj/project.pbxproj")
	require.NoError(t, err)
	require.Equal(t, "updated", string(content))

	// Parent directories become visible to Stat
	info, err := mfs.Stat("/test/project/App.xcodeproj")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestMemoryFileSystem_WriteFile_DirectoryCollision(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("Views/HomeView.swift", "import SwiftUI")

	err := mfs.WriteFile("Views", []byte("not a file"))
	require.Error(t, err)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	// Add a file
	mfs.AddFile("AppDelegate.swift", "import UIKit")

	// Stat the file
	info, err := mfs.Stat("/test/project/AppDelegate.swift")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "AppDelegate.swift", info.Name())

	// Stat the root directory
	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("App.xcodeproj/project.pbxproj", "// !$*UTF8*$!")
	mfs.AddFile("Sources/Main.swift", "struct Main {}")
	mfs.AddFile("Sources/Views/Home.swift", "struct Home {}")

	// Only direct children of the root, sorted by name
	entries, err := mfs.ReadDir("/test/project")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "App.xcodeproj", entries[0].Name())
	require.True(t, entries[0].IsDir())
	require.Equal(t, "Sources", entries[1].Name())

	// Relative paths resolve against the root
	entries, err = mfs.ReadDir("Sources")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	_, err = mfs.ReadDir("missing")
	require.Error(t, err)

	_, err = mfs.ReadDir("Sources/Main.swift")
	require.Error(t, err)
}
