package assetref

// AssetHandle identifies the asset a caller wants to find references to.
// A nil handle or a handle with a blank Path is rejected before any
// filesystem work happens.
type AssetHandle struct {
	// Path is the project-relative path of the asset, e.g. "Assets/Sprites/hero.png".
	Path string
}

// NewAssetHandle creates a handle for the asset at the given path.
func NewAssetHandle(path string) *AssetHandle {
	return &AssetHandle{Path: path}
}

// AssetIdentity is the resolved identity of a target asset.
// GUID is always non-empty for an identity returned by a resolver.
type AssetIdentity struct {
	Path string `json:"asset"`
	GUID string `json:"guid"`
}

// SearchOptions controls a single reference search.
type SearchOptions struct {
	// Extensions are the extension selectors to scan, one pass each, in order.
	// Accepted forms: "*.prefab", ".prefab", "prefab".
	Extensions []string

	// DeepSpriteFilter restricts matches in prefab and scene files to
	// references made through a SpriteRenderer's sprite field.
	DeepSpriteFilter bool

	// RootDirectory is the directory tree to scan.
	RootDirectory string

	// Workers bounds concurrent file reads within a pass.
	// Zero or one scans sequentially.
	Workers int
}

// MatchResult is the ordered list of referencing file paths.
// Results of separate passes are concatenated without deduplication.
type MatchResult []string

// Count returns the number of matches.
func (r MatchResult) Count() int {
	return len(r)
}
