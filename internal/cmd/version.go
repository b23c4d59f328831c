package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopipy/posctl/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		printOut(cmd, fmt.Sprintf("%s\n", version.GetInfo()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
