package assetref

// Progress receives notifications while a search runs.
// Implementations must be safe for concurrent use when Workers > 1,
// because FileScanned and FileSkipped may then be called from several goroutines.
type Progress interface {
	// PassStarted is called before the tree is walked for a selector.
	// index is zero-based; total is the number of passes in the search.
	PassStarted(selector string, index, total int)

	// FileScanned is called after a candidate file has been matched.
	FileScanned(path string)

	// FileSkipped is called when a candidate file could not be read or parsed.
	FileSkipped(path string, err error)

	// PassCompleted is called with the matches of a finished pass.
	PassCompleted(selector string, matches []string)
}

// NopProgress discards all progress notifications.
type NopProgress struct{}

func (NopProgress) PassStarted(string, int, int)   {}
func (NopProgress) FileScanned(string)             {}
func (NopProgress) FileSkipped(string, error)      {}
func (NopProgress) PassCompleted(string, []string) {}

var _ Progress = NopProgress{}
