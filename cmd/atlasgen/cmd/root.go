package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atlasgen",
	Short: "atlasgen — placeholder sprite atlas generator",
	Long:  "Renders the 4×3 placeholder sprite sheet used as a test fixture, and verifies existing fixtures against the expected layout.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(verifyCmd)
}
