package filesystem_test

import (
	"embed"
	"fmt"
	"log"

	"github.com/vvka-141/pbxsync/internal/files/filesystem"
)

//go:embed testdata
var exampleFS embed.FS

// Example_embedFileSystem demonstrates using EmbedFileSystem to read files from embedded resources
func Example_embedFileSystem() {
	// Create an EmbedFileSystem wrapping embedded resources
	efs := filesystem.NewEmbedFileSystem(exampleFS, "testdata")

	// Read a file directly
	content, err := efs.ReadFile("AppDelegate.swift")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Content: %s", string(content))

	// Output:
	// Content: import UIKit
}

// Example_embedFileSystem_walk demonstrates walking a directory tree from embedded resources
func Example_embedFileSystem_walk() {
	// Create an EmbedFileSystem wrapping embedded resources
	efs := filesystem.NewEmbedFileSystem(exampleFS, "testdata")

	// Open the root directory
	dir, err := efs.Open(".")
	if err != nil {
		log.Fatal(err)
	}

	// Walk the directory tree
	var fileCount int
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if !file.Info().IsDir() {
			fileCount++
			fmt.Printf("Found file: %s\n", file.RelativePath())
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Total files: %d\n", fileCount)

	// Output:
	// Found file: AppDelegate.swift
	// Found file: Views/HomeView.swift
	// Total files: 2
}

// Example_memoryFileSystem demonstrates using MemoryFileSystem for testing
func Example_memoryFileSystem() {
	// Create an in-memory filesystem
	mfs := filesystem.NewMemoryFileSystem("/test")

	// Add files
	mfs.AddFile("Sources/Feed/FeedView.swift", "import SwiftUI")
	mfs.AddFile("Sources/Feed/FeedModel.swift", "import Foundation")

	// Read a file
	content, err := mfs.ReadFile("Sources/Feed/FeedView.swift")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Source content: %s\n", string(content))

	// Open and walk the directory
	dir, err := mfs.Open("/test/Sources")
	if err != nil {
		log.Fatal(err)
	}

	var fileCount int
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if !file.Info().IsDir() {
			fileCount++
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Total source files: %d\n", fileCount)

	// Output:
	// Source content: import SwiftUI
	// Total source files: 2
}

// Example_fileSystemProvider demonstrates the FileSystemProvider abstraction
func Example_fileSystemProvider() {
	// Function that works with any FileSystemProvider implementation
	countFiles := func(fsProvider filesystem.FileSystemProvider, path string) (int, error) {
		dir, err := fsProvider.Open(path)
		if err != nil {
			return 0, err
		}

		count := 0
		err = dir.Walk(func(file filesystem.File, err error) error {
			if err != nil {
				return err
			}
			if !file.Info().IsDir() {
				count++
			}
			return nil
		})
		return count, err
	}

	// Use with EmbedFileSystem
	efs := filesystem.NewEmbedFileSystem(exampleFS, "testdata")
	embedCount, err := countFiles(efs, ".")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Embedded files: %d\n", embedCount)

	// Use with MemoryFileSystem
	mfs := filesystem.NewMemoryFileSystem("/test")
	mfs.AddFile("File1.swift", "import Foundation")
	mfs.AddFile("File2.swift", "import Foundation")
	memCount, err := countFiles(mfs, "/test")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Memory files: %d\n", memCount)

	// Output:
	// Embedded files: 2
	// Memory files: 2
}

// Example_memoryFileSystem_testFixture demonstrates using MemoryFileSystem for test fixtures
func Example_memoryFileSystem_testFixture() {
	// Create a test fixture shaped like an Xcode project checkout
	createTestFixture := func() filesystem.FileSystemProvider {
		mfs := filesystem.NewMemoryFileSystem("/project")
		mfs.AddFile("App.xcodeproj/project.pbxproj", "// !$*UTF8*$!")
		mfs.AddFile("Sources/AppDelegate.swift", "import UIKit")
		mfs.AddFile("Sources/Views/HomeView.swift", "import SwiftUI")
		mfs.AddFile("Sources/Views/DetailView.swift", "import SwiftUI")
		return mfs
	}

	// Use in tests
	fs := createTestFixture()

	// Verify the manifest exists
	if _, err := fs.Stat("App.xcodeproj/project.pbxproj"); err != nil {
		log.Fatal("manifest not found")
	}
	fmt.Println("Manifest: exists")

	// Count view files
	dir, _ := fs.Open("/project/Sources/Views")
	viewCount := 0
	dir.Walk(func(file filesystem.File, err error) error {
		if !file.Info().IsDir() {
			viewCount++
		}
		return nil
	})
	fmt.Printf("View files: %d\n", viewCount)

	// Output:
	// Manifest: exists
	// View files: 2
}
