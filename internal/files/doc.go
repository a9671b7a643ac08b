// Package files groups the project tree access used by a reference search.
//
// Sub-packages:
//   - filesystem: Filesystem abstraction with OS, in-memory, go-billy and counting implementations
//   - scanner: Extension selectors and per-pass reference scanning
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/assetref/internal/files/filesystem"
//	    "github.com/vvka-141/assetref/internal/files/scanner"
//	)
//
//	fs := filesystem.NewOSFileSystem()
//	s := scanner.NewScannerWithFS(fs, logger)
//	results, err := s.Scan(ctx, assetref.SearchOptions{
//	    Extensions:    []string{"*.prefab", "*.unity"},
//	    RootDirectory: "Assets",
//	}, guid)
package files
