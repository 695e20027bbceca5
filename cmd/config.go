package cmd

import (
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage scoldme configuration",
	Long: `Provides commands to initialize, show, and locate the scoldme configuration,
and to store the OpenAI API key in the OS keychain.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
