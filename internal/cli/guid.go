package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/assetref/pkg/assetref"
)

var guidProject string

var guidCmd = &cobra.Command{
	Use:   "guid <asset_path>",
	Short: "Print the GUID of an asset",
	Long: `Reads the asset's .meta file and prints its GUID to stdout.
The asset path is relative to the project directory.`,
	Example:           `  assetref guid Assets/Sprites/hero.png`,
	Args:              RequireAssetPath,
	RunE:              runGUID,
	ValidArgsFunction: completeAssetPaths,
}

func init() {
	guidCmd.Flags().StringVarP(&guidProject, "project", "p", ".", "Unity project directory")
	_ = guidCmd.MarkFlagDirname("project")
	rootCmd.AddCommand(guidCmd)
}

func runGUID(cmd *cobra.Command, args []string) error {
	proj, err := openProject(guidProject, getVerboseFlag(cmd))
	if err != nil {
		return err
	}
	assetPath, err := proj.relativeAsset(args[0])
	if err != nil {
		return err
	}
	identity, err := proj.resolver().Resolve(assetref.NewAssetHandle(assetPath))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), identity.GUID)
	return nil
}
