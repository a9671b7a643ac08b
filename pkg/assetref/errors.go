package assetref

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes of a search.
// Callers distinguish them using errors.Is().
//
// Example usage:
//
//	results, err := finder.Search(ctx, handle, opts)
//	if errors.Is(err, assetref.ErrResolutionFailure) {
//	    // The asset has no usable .meta file
//	}
var (
	// ErrInvalidInput indicates a missing target asset or malformed search options.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResolutionFailure indicates the asset's GUID could not be derived.
	ErrResolutionFailure = errors.New("guid resolution failed")

	// ErrTraversalFailure indicates the scan root could not be opened or walked.
	ErrTraversalFailure = errors.New("traversal failed")

	// ErrInvalidConfig indicates the project configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// usageErrorPatterns are message fragments produced by cobra and by our
// argument validators for command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"missing required argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, ErrResolutionFailure):
		return ExitResolutionFailure
	case errors.Is(err, ErrTraversalFailure):
		return ExitTraversalFailure
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
