package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireAssetPath validates that exactly one asset_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireAssetPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <asset_path>

Usage: %s

Example:
  %s Assets/Sprites/hero.png --sprite-filter`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// OptionalProjectDir accepts zero or one project_dir argument.
func OptionalProjectDir(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))
	}
	return nil
}
