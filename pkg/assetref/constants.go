package assetref

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Search completed (with or without matches)
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitInvalidInput      = 10 // No target asset supplied
	ExitResolutionFailure = 11 // GUID could not be derived
	ExitTraversalFailure  = 12 // Scan root inaccessible
	ExitConfigError       = 13 // Invalid assetref.yaml or environment override
)

// Extension selectors for the structural and generic asset kinds the tool
// searches by default.
const (
	SelectorPrefab   = "*.prefab"
	SelectorScene    = "*.unity"
	SelectorMaterial = "*.mat"
	SelectorAsset    = "*.asset"
)

const (
	// DefaultRootDirectory is the scan root used when none is configured.
	DefaultRootDirectory = "Assets"

	// DefaultReportPath is where the text report is written when none is configured.
	DefaultReportPath = "Assets/Logs/AssetReferenceSearchResult.txt"

	// MetaFileSuffix is appended to an asset path to locate its GUID sidecar.
	MetaFileSuffix = ".meta"

	// MaxWorkers caps the per-pass read concurrency accepted from configuration.
	MaxWorkers = 64
)
