// Package loader handles locating and reading the project manifest.
//
// The loader package is responsible for:
//   - Discovering the project bundle directory under a project root
//   - Resolving an explicit manifest path, including bundle directories
//   - Reading the manifest bytes for the synchronizer
//
// Discovery requires exactly one bundle with a manifest file: ambiguous
// layouts must be disambiguated with an explicit manifest path.
package loader
