package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/assetref/pkg/assetref"
)

// ProgressScanner is a ReferenceScanner that can report per-pass progress.
type ProgressScanner interface {
	assetref.ReferenceScanner
	ScanWithProgress(ctx context.Context, opts assetref.SearchOptions, guid string, progress assetref.Progress) (assetref.MatchResult, error)
}

// SearchReport is the outcome of one search: who was searched for and
// where it was found.
type SearchReport struct {
	Identity assetref.AssetIdentity
	Results  assetref.MatchResult
}

// FinderService implements assetref.Finder.
// Safe for concurrent use as long as the injected resolver and scanner are.
type FinderService struct {
	resolver assetref.Resolver
	scanner  assetref.ReferenceScanner
	logger   assetref.Logger
}

// NewFinderService creates a FinderService. Panics on nil dependencies.
func NewFinderService(resolver assetref.Resolver, scanner assetref.ReferenceScanner, logger assetref.Logger) *FinderService {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &FinderService{
		resolver: resolver,
		scanner:  scanner,
		logger:   logger,
	}
}

// Search implements assetref.Finder.
func (s *FinderService) Search(ctx context.Context, handle *assetref.AssetHandle, opts assetref.SearchOptions) (assetref.MatchResult, error) {
	report, err := s.SearchWithProgress(ctx, handle, opts, nil)
	if err != nil {
		return nil, err
	}
	return report.Results, nil
}

// SearchWithProgress resolves handle and scans for its GUID, reporting
// progress to the given observer. A nil observer reports nothing.
// An empty extension set returns before the resolver runs.
func (s *FinderService) SearchWithProgress(ctx context.Context, handle *assetref.AssetHandle, opts assetref.SearchOptions, progress assetref.Progress) (SearchReport, error) {
	if handle == nil || strings.TrimSpace(handle.Path) == "" {
		return SearchReport{}, fmt.Errorf("%w: no asset selected", assetref.ErrInvalidInput)
	}
	if !hasSelectors(opts.Extensions) {
		s.logger.Verbose("no extensions selected, nothing to scan")
		return SearchReport{
			Identity: assetref.AssetIdentity{Path: handle.Path},
			Results:  assetref.MatchResult{},
		}, nil
	}

	identity, err := s.resolver.Resolve(handle)
	if err != nil {
		return SearchReport{}, err
	}

	return s.SearchWithIdentity(ctx, identity, opts, progress)
}

// SearchWithIdentity scans for an already resolved identity.
func (s *FinderService) SearchWithIdentity(ctx context.Context, identity assetref.AssetIdentity, opts assetref.SearchOptions, progress assetref.Progress) (SearchReport, error) {
	if identity.GUID == "" {
		return SearchReport{}, fmt.Errorf("%w: identity for %s has no guid", assetref.ErrResolutionFailure, identity.Path)
	}
	if opts.Workers < 0 || opts.Workers > assetref.MaxWorkers {
		return SearchReport{}, fmt.Errorf("%w: workers must be between 0 and %d, got %d", assetref.ErrInvalidInput, assetref.MaxWorkers, opts.Workers)
	}

	report := SearchReport{Identity: identity, Results: assetref.MatchResult{}}
	if !hasSelectors(opts.Extensions) {
		s.logger.Verbose("no extensions selected, nothing to scan")
		return report, nil
	}

	s.logger.Verbose("searching for %s (%s) in %s", identity.Path, identity.GUID, rootOf(opts))

	var (
		results assetref.MatchResult
		err     error
	)
	if ps, ok := s.scanner.(ProgressScanner); ok && progress != nil {
		results, err = ps.ScanWithProgress(ctx, opts, identity.GUID, progress)
	} else {
		results, err = s.scanner.Scan(ctx, opts, identity.GUID)
	}
	if err != nil {
		return SearchReport{}, err
	}

	report.Results = results
	return report, nil
}

func hasSelectors(extensions []string) bool {
	for _, ext := range extensions {
		if strings.TrimSpace(ext) != "" {
			return true
		}
	}
	return false
}

func rootOf(opts assetref.SearchOptions) string {
	if opts.RootDirectory == "" {
		return assetref.DefaultRootDirectory
	}
	return opts.RootDirectory
}

// Verify FinderService implements the interface at compile time
var _ assetref.Finder = (*FinderService)(nil)
