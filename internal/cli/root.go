package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assetref",
	Short: "Find every file in a Unity project that references an asset",
	Long: `assetref looks up an asset's GUID in its .meta file and scans prefabs,
scenes, materials and other serialized assets for references to it.

With --sprite-filter, prefab and scene matches are restricted to
SpriteRenderer components whose sprite is the asset, on any node of the
object hierarchy, instead of any textual occurrence of the GUID.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid input (no asset given, bad selector)
  11 - Asset GUID could not be resolved
  12 - Project tree could not be traversed
  13 - Invalid configuration`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for assetref")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

// commandContext returns the command's context, falling back to Background
// when the command is run outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
