package assetref

import "context"

// Resolver maps an asset handle to its identity.
type Resolver interface {
	// Resolve returns the canonical path and GUID of the asset.
	// Returns ErrInvalidInput for a nil or blank handle and
	// ErrResolutionFailure when no GUID can be derived.
	Resolve(handle *AssetHandle) (AssetIdentity, error)
}

// ReferenceScanner finds files that reference a GUID.
// Implementations must be safe for concurrent use by multiple goroutines.
type ReferenceScanner interface {
	// Scan runs one pass per extension selector in opts and concatenates the
	// matches in selector order. Returns ErrTraversalFailure when the root
	// directory cannot be walked.
	Scan(ctx context.Context, opts SearchOptions, guid string) (MatchResult, error)
}

// Finder is the search entry point used by presentation adapters.
type Finder interface {
	// Search resolves the handle and returns every referencing file.
	Search(ctx context.Context, handle *AssetHandle, opts SearchOptions) (MatchResult, error)
}
