package scanner

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vvka-141/assetref/internal/files/filesystem"
	"github.com/vvka-141/assetref/internal/logging"
	"github.com/vvka-141/assetref/internal/matcher"
	"github.com/vvka-141/assetref/pkg/assetref"
)

// Scanner walks a directory tree once per extension selector and reports the
// files whose content references a GUID.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	matchers   *matcher.Registry
	logger     assetref.Logger
}

// NewScanner creates a scanner over the OS filesystem.
func NewScanner(logger assetref.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil. A nil logger discards all output.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger assetref.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		fsProvider: fsProvider,
		matchers:   matcher.NewRegistry(),
		logger:     logger,
	}
}

// Matchers exposes the registry so callers can add structural matchers for
// further file kinds.
func (s *Scanner) Matchers() *matcher.Registry {
	return s.matchers
}

// Scan implements assetref.ReferenceScanner.
func (s *Scanner) Scan(ctx context.Context, opts assetref.SearchOptions, guid string) (assetref.MatchResult, error) {
	return s.ScanWithProgress(ctx, opts, guid, assetref.NopProgress{})
}

// ScanWithProgress runs one pass per selector in opts.Extensions, in the
// order given, and concatenates their matches. An empty selector list
// returns an empty result without touching the filesystem.
func (s *Scanner) ScanWithProgress(ctx context.Context, opts assetref.SearchOptions, guid string, progress assetref.Progress) (assetref.MatchResult, error) {
	if progress == nil {
		progress = assetref.NopProgress{}
	}

	selectors, err := ParseSelectors(opts.Extensions)
	if err != nil {
		return nil, err
	}

	results := assetref.MatchResult{}
	if len(selectors) == 0 {
		return results, nil
	}

	root := opts.RootDirectory
	if root == "" {
		root = assetref.DefaultRootDirectory
	}

	for i, sel := range selectors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		progress.PassStarted(sel.Pattern, i, len(selectors))
		matches, err := s.ScanPass(ctx, PassRequest{
			Root:     root,
			Selector: sel,
			GUID:     guid,
			Deep:     opts.DeepSpriteFilter,
			Workers:  opts.Workers,
		}, progress)
		if err != nil {
			return nil, err
		}
		progress.PassCompleted(sel.Pattern, matches)

		s.logger.Verbose("%s: %d match(es)", sel.Pattern, len(matches))
		results = append(results, matches...)
	}

	return results, nil
}

// PassRequest describes one traversal restricted to a single selector.
type PassRequest struct {
	Root     string
	Selector Selector
	GUID     string
	Deep     bool
	Workers  int
}

type candidate struct {
	file filesystem.File
	path string
}

// ScanPass walks req.Root and returns the matching files for one selector,
// in enumeration order. Unreadable or unparsable files are skipped.
func (s *Scanner) ScanPass(ctx context.Context, req PassRequest, progress assetref.Progress) ([]string, error) {
	if progress == nil {
		progress = assetref.NopProgress{}
	}

	dir, err := s.fsProvider.Open(req.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", assetref.ErrTraversalFailure, req.Root, err)
	}

	candidates, err := s.collect(ctx, dir, req)
	if err != nil {
		return nil, err
	}

	m := s.matchers.For(req.Selector.Ext, req.Deep)
	s.logger.Verbose("%s: %d candidate file(s), %s matching", req.Selector.Pattern, len(candidates), m.Name())

	matched := make([]bool, len(candidates))
	if req.Workers <= 1 {
		for i, c := range candidates {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			matched[i] = s.matchFile(c, m, req.GUID, progress)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(req.Workers)
		for i, c := range candidates {
			if gctx.Err() != nil {
				break
			}
			i, c := i, c
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				matched[i] = s.matchFile(c, m, req.GUID, progress)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	found := []string{}
	for i, c := range candidates {
		if matched[i] {
			found = append(found, c.path)
		}
	}
	return found, nil
}

// collect walks the tree and returns selector-matching files sorted by
// relative path. Errors on the root abort; errors below it skip the entry.
func (s *Scanner) collect(ctx context.Context, dir filesystem.Directory, req PassRequest) ([]candidate, error) {
	root := filepath.ToSlash(req.Root)
	var candidates []candidate

	err := dir.Walk(func(file filesystem.File, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if file == nil || file.RelativePath() == "." {
				return fmt.Errorf("%w: failed to walk %s: %w", assetref.ErrTraversalFailure, req.Root, walkErr)
			}
			s.logger.Verbose("skipping %s: %v", file.RelativePath(), walkErr)
			return nil
		}

		if file.Info().IsDir() {
			return nil
		}

		rel := file.RelativePath()
		if !req.Selector.Matches(path.Base(rel)) {
			return nil
		}

		candidates = append(candidates, candidate{
			file: file,
			path: path.Join(root, rel),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].file.RelativePath() < candidates[j].file.RelativePath()
	})
	return candidates, nil
}

func (s *Scanner) matchFile(c candidate, m matcher.Matcher, guid string, progress assetref.Progress) bool {
	content, err := c.file.ReadContent()
	if err != nil {
		s.logger.Verbose("skipping unreadable %s: %v", c.path, err)
		progress.FileSkipped(c.path, err)
		return false
	}

	ok, err := m.Match(content, guid)
	if err != nil {
		s.logger.Verbose("skipping %s: %s matcher: %v", c.path, m.Name(), err)
		progress.FileSkipped(c.path, err)
		return false
	}

	progress.FileScanned(c.path)
	return ok
}

// Verify Scanner implements the interface at compile time
var _ assetref.ReferenceScanner = (*Scanner)(nil)
