// Package files groups file-related functionality into sub-packages.
//
//   - filesystem: filesystem abstraction interfaces and implementations
//     (OS, in-memory, embedded)
//   - scanner: source file discovery under a project root
//   - loader: manifest location, reading and writing
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/pbxsync/internal/files/filesystem"
//	    "github.com/vvka-141/pbxsync/internal/files/scanner"
//	    "github.com/vvka-141/pbxsync/internal/files/loader"
//	)
//
//	// Discover source files
//	fileScanner := scanner.NewScanner(nil, nil)
//	result, err := fileScanner.ScanDirectory("./MyApp")
//
//	// Locate and read the manifest
//	manifests := loader.NewLoader()
//	path, err := manifests.Resolve("./MyApp", "")
//	content, err := manifests.Load(path)
package files
