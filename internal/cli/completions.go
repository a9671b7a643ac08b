package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// commonSelectors are serialized Unity file kinds offered for --ext completion.
var commonSelectors = []string{
	"*.prefab", "*.unity", "*.mat", "*.asset",
	"*.controller", "*.overrideController", "*.anim", "*.playable",
	"*.spriteatlas", "*.guiskin", "*.fontsettings", "*.mask",
}

// completeSelectors provides shell completion for the --ext flag.
func completeSelectors(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, sel := range commonSelectors {
		if strings.HasPrefix(sel, toComplete) || strings.HasPrefix(strings.TrimPrefix(sel, "*"), toComplete) {
			matches = append(matches, sel)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeAssetPaths completes the single asset argument with file names.
func completeAssetPaths(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}
