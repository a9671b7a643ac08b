package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetref/internal/config"
	"github.com/vvka-141/assetref/internal/files/scanner"
	"github.com/vvka-141/assetref/internal/report"
	"github.com/vvka-141/assetref/internal/services"
	"github.com/vvka-141/assetref/internal/tui"
	"github.com/vvka-141/assetref/pkg/assetref"
)

// findOptions holds the find command's flag values.
type findOptions struct {
	project      string
	root         string
	prefabs      bool
	scenes       bool
	materials    bool
	assets       bool
	extensions   []string
	spriteFilter bool
	output       string
	noReport     bool
	json         bool
	workers      int
	guid         string
}

var findFlags findOptions

var findCmd = &cobra.Command{
	Use:   "find <asset_path>",
	Short: "List the files that reference an asset",
	Long: `Resolves the asset's GUID from its .meta file and scans the project
once per selected file kind, in this order: prefabs, scenes, materials,
assets, then any --ext selectors.

The asset path is relative to the project directory. Results are printed
to stdout and written to the report file unless --no-report is given.

Configuration precedence (highest to lowest):
  1. Command line flags
  2. Environment (ASSETREF_ROOT, ASSETREF_OUTPUT, ASSETREF_SPRITE_FILTER, ASSETREF_WORKERS, also read from .env)
  3. assetref.yaml in the project directory
  4. Built-in defaults`,
	Example: `  assetref find Assets/Sprites/hero.png
  assetref find Assets/Sprites/hero.png --sprite-filter
  assetref find Assets/Materials/red.mat --materials --ext "*.controller" --json
  assetref find --guid 5f3a9c1e2b7d4e6f8a0b1c2d3e4f5a6b`,
	Args: func(cmd *cobra.Command, args []string) error {
		if findFlags.guid != "" {
			return OptionalProjectDir(cmd, args)
		}
		return RequireAssetPath(cmd, args)
	},
	RunE:              runFind,
	ValidArgsFunction: completeAssetPaths,
}

func init() {
	f := findCmd.Flags()
	f.StringVarP(&findFlags.project, "project", "p", ".", "Unity project directory")
	f.StringVar(&findFlags.root, "root", assetref.DefaultRootDirectory, "Directory to scan, relative to the project")
	f.BoolVar(&findFlags.prefabs, "prefabs", true, "Scan prefab files (*.prefab)")
	f.BoolVar(&findFlags.scenes, "scenes", true, "Scan scene files (*.unity)")
	f.BoolVar(&findFlags.materials, "materials", false, "Scan material files (*.mat)")
	f.BoolVar(&findFlags.assets, "assets", false, "Scan serialized asset files (*.asset)")
	f.StringSliceVar(&findFlags.extensions, "ext", nil, "Additional selectors to scan, e.g. \"*.controller\" (repeatable)")
	f.BoolVar(&findFlags.spriteFilter, "sprite-filter", false, "Only count prefab and scene references made by a SpriteRenderer's sprite")
	f.StringVarP(&findFlags.output, "output", "o", assetref.DefaultReportPath, "Report file, relative to the project")
	f.BoolVar(&findFlags.noReport, "no-report", false, "Do not write the report file")
	f.BoolVar(&findFlags.json, "json", false, "Print results as JSON")
	f.IntVar(&findFlags.workers, "workers", 1, fmt.Sprintf("Concurrent file reads per pass (1-%d)", assetref.MaxWorkers))
	f.StringVar(&findFlags.guid, "guid", "", "Search for this GUID instead of reading the asset's .meta file")

	_ = findCmd.RegisterFlagCompletionFunc("ext", completeSelectors)
	_ = findCmd.MarkFlagDirname("project")

	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	proj, err := openProject(findFlags.project, verbose)
	if err != nil {
		return err
	}
	if err := applyFindFlags(proj.config, findFlags, cmd.Flags().Changed); err != nil {
		return err
	}

	opts := proj.config.SearchOptions()
	if opts.RootDirectory, err = proj.scanRoot(); err != nil {
		return err
	}

	identity, err := resolveFindTarget(proj, args)
	if err != nil {
		return err
	}

	logger := proj.logger
	finder := services.NewFinderService(proj.resolver(), scanner.NewScannerWithFS(proj.fs, logger), logger)

	var result services.SearchReport
	search := func(ctx context.Context, progress assetref.Progress) error {
		var err error
		result, err = finder.SearchWithIdentity(ctx, identity, opts, progress)
		return err
	}

	ctx := commandContext(cmd)
	if !findFlags.json && tui.IsInteractive() {
		err = tui.RunSearch(ctx, os.Stderr, identity.Path, len(opts.Extensions), search)
	} else {
		err = search(ctx, logProgress{logger: logger})
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if findFlags.json {
		if err := report.WriteJSON(out, result.Identity, result.Results); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, report.Format(result.Identity, result.Results))
	}

	if findFlags.noReport {
		return nil
	}
	if result.Results.Count() == 0 {
		logger.Verbose("no references found, report file left untouched")
		return nil
	}
	reportPath := proj.reportPath()
	if err := report.Write(reportPath, result.Identity, result.Results); err != nil {
		return err
	}
	logger.Verbose("report written to %s", reportPath)
	return nil
}

// resolveFindTarget returns the identity to search for, either from --guid
// or from the asset's .meta file.
func resolveFindTarget(proj *project, args []string) (assetref.AssetIdentity, error) {
	res := proj.resolver()

	if findFlags.guid != "" {
		assetPath := ""
		if len(args) == 1 {
			var err error
			if assetPath, err = proj.relativeAsset(args[0]); err != nil {
				return assetref.AssetIdentity{}, err
			}
		}
		return res.ResolveGUID(assetPath, findFlags.guid)
	}

	if len(args) == 0 {
		return assetref.AssetIdentity{}, fmt.Errorf("%w: no asset selected", assetref.ErrInvalidInput)
	}
	assetPath, err := proj.relativeAsset(args[0])
	if err != nil {
		return assetref.AssetIdentity{}, err
	}
	return res.Resolve(assetref.NewAssetHandle(assetPath))
}

// applyFindFlags overlays explicitly set flags onto cfg.
func applyFindFlags(cfg *config.ProjectConfig, flags findOptions, changed func(string) bool) error {
	if changed("root") {
		cfg.Root = flags.root
	}
	if changed("prefabs") {
		cfg.Search.Prefabs = flags.prefabs
	}
	if changed("scenes") {
		cfg.Search.Scenes = flags.scenes
	}
	if changed("materials") {
		cfg.Search.Materials = flags.materials
	}
	if changed("assets") {
		cfg.Search.Assets = flags.assets
	}
	if changed("ext") {
		if _, err := scanner.ParseSelectors(flags.extensions); err != nil {
			return err
		}
		cfg.ExtraExtensions = append(cfg.ExtraExtensions, flags.extensions...)
	}
	if changed("sprite-filter") {
		cfg.SpriteFilter = flags.spriteFilter
	}
	if changed("output") {
		cfg.Output = flags.output
	}
	if changed("workers") {
		cfg.Workers = flags.workers
	}
	return cfg.Validate()
}
