package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/karolswdev/scoldme/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize scoldme configuration",
	Long: `Creates the configuration directory and a commented default config.yaml
if they don't exist. Existing files are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config-dir")
		provider, err := GetProvider(configDir)
		if err != nil {
			log.Error().Err(err).Msg("Failed to get service provider")
			return fmt.Errorf("failed to get service provider: %w", err)
		}
		return configInitRunE(provider.Config, cmd.OutOrStdout())
	},
}

func init() {
	configCmd.AddCommand(initCmd)
}

// configInitRunE contains the core logic for the config init command.
// It accepts dependencies for testability.
func configInitRunE(configProvider ConfigProvider, writer io.Writer) error {
	log.Info().Msg("Initializing configuration...")
	dir, err := configProvider.CreateDefaultConfigFiles()
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize configuration files")
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}
	log.Info().Str("path", dir).Msg("Configuration initialization complete.")
	fmt.Fprintln(writer, "Configuration directory and default files ensured.")
	fmt.Fprintf(writer, "  %s\n", filepath.Join(dir, config.DefaultConfigFileName))
	fmt.Fprintln(writer, "Next: run 'scold config set-key <openai-api-key>' to store your API key.")
	return nil
}
