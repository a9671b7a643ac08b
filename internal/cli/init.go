package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetref/internal/config"
	"github.com/vvka-141/assetref/pkg/assetref"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init [project_dir]",
	Short: "Write a default assetref.yaml",
	Long: `Creates assetref.yaml with the default search settings in the given
project directory (the current directory if omitted). An existing file is
kept unless --force is given.`,
	Args: OptionalProjectDir,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing assetref.yaml")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: project directory %s: %w", assetref.ErrInvalidInput, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: project path %s is not a directory", assetref.ErrInvalidInput, dir)
	}

	target := filepath.Join(dir, config.ConfigFileName)
	if _, err := os.Stat(target); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}

	if err := config.Save(dir, config.Default()); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
	return nil
}
