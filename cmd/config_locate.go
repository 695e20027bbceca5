package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/karolswdev/scoldme/internal/config"
)

// configLocateRunE contains the core logic for the config locate command.
// It uses dependency injection for testability.
func configLocateRunE(cfgProvider ConfigProvider, out io.Writer) error {
	configDir, err := cfgProvider.EnsureConfigDir()
	if err != nil {
		return fmt.Errorf("error ensuring config directory: %w", err)
	}

	fmt.Fprintf(out, "Configuration directory: %s\n", configDir)
	fmt.Fprintln(out, "Expected configuration files:")
	fmt.Fprintf(out, "- %s\n", filepath.Join(configDir, config.DefaultConfigFileName))
	fmt.Fprintf(out, "API key: OS keychain (service %q, user %q), or $%s / $%s\n",
		config.KeyringServiceName, config.KeyringUserName, config.EnvAPIKeyName, config.EnvOpenAIKeyName)

	return nil
}

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Locate scoldme configuration files",
	Long: `Displays the configuration directory and the files scoldme reads from it,
plus where the API key is looked up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config-dir")
		provider, err := GetProvider(configDir)
		if err != nil {
			return fmt.Errorf("failed to initialize provider: %w", err)
		}
		return configLocateRunE(provider.Config, cmd.OutOrStdout())
	},
}

func init() {
	configCmd.AddCommand(locateCmd)
}
