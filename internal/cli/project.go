package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/vvka-141/assetref/internal/config"
	"github.com/vvka-141/assetref/internal/files/filesystem"
	"github.com/vvka-141/assetref/internal/logging"
	"github.com/vvka-141/assetref/internal/resolver"
	"github.com/vvka-141/assetref/pkg/assetref"
)

// project is an opened Unity project: its directory, its rooted filesystem
// and its effective configuration.
type project struct {
	dir    string
	fs     filesystem.FileSystemProvider
	config *config.ProjectConfig
	logger *logging.ConsoleLogger
}

// openProject loads .env and assetref.yaml from dir and applies environment
// overrides. Flag overrides are applied by the caller.
func openProject(dir string, verbose bool) (*project, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid project directory %q: %w", assetref.ErrInvalidInput, dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: project directory %s: %w", assetref.ErrInvalidInput, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: project path %s is not a directory", assetref.ErrInvalidInput, dir)
	}

	logger := logging.NewConsoleLogger(verbose)

	if err := config.LoadDotEnv(abs); err != nil {
		return nil, err
	}
	cfg, err := config.LoadOrDefault(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	logger.Verbose("project %s: root %s, output %s", abs, cfg.Root, cfg.Output)
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return &project{
		dir:    abs,
		fs:     filesystem.NewBillyFileSystem(osfs.New(abs)),
		config: cfg,
		logger: logger,
	}, nil
}

// relativeAsset maps an asset argument onto a project-relative path.
// Both absolute and relative paths must stay inside the project.
func (p *project) relativeAsset(assetPath string) (string, error) {
	assetPath = strings.TrimSpace(assetPath)
	if assetPath == "" {
		return "", fmt.Errorf("%w: asset path cannot be empty", assetref.ErrInvalidInput)
	}
	return p.relative(assetPath)
}

// scanRoot returns the configured root relative to the project.
func (p *project) scanRoot() (string, error) {
	return p.relative(strings.TrimSpace(p.config.Root))
}

func (p *project) relative(assetPath string) (string, error) {
	rel := filepath.Clean(assetPath)
	if filepath.IsAbs(assetPath) {
		var err error
		if rel, err = filepath.Rel(p.dir, assetPath); err != nil {
			return "", fmt.Errorf("%w: %s is outside the project %s", assetref.ErrInvalidInput, assetPath, p.dir)
		}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is outside the project %s", assetref.ErrInvalidInput, assetPath, p.dir)
	}
	return filepath.ToSlash(rel), nil
}

func (p *project) resolver() *resolver.MetaResolver {
	return resolver.NewResolver(p.fs, p.logger)
}

// reportPath resolves the configured report file against the project.
func (p *project) reportPath() string {
	if filepath.IsAbs(p.config.Output) {
		return p.config.Output
	}
	return filepath.Join(p.dir, filepath.FromSlash(p.config.Output))
}
