// File: cmd/version.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"collate/pkg/version"
)

// versionCmd prints the build information stamped into the binary. The
// --short flag prints the bare version number for scripting.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the collate version",
	Long:  `Display the version, commit, and build information of the collate CLI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Fprintln(cmd.OutOrStdout(), v.Version)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "print the version number only")
	RootCmd.AddCommand(versionCmd)
}
