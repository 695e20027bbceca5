package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/karolswdev/scoldme/internal/config"
)

// setKeyCmd represents the set-key command
var setKeyCmd = &cobra.Command{
	Use:   "set-key [api-key]",
	Short: "Stores the OpenAI API key securely in the OS keychain",
	Long: `Stores the OpenAI API key securely in the operating system's keychain or keyring.
This is the recommended way to configure the API key for scoldme.
The key will be associated with the service 'scoldme' and user 'openai_api_key'.
On machines without a keychain, set SCOLDME_LLM_API_KEY or OPENAI_API_KEY instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configSetKeyRun(&defaultKeyringClient{}, cmd.OutOrStdout(), args[0])
	},
}

// configSetKeyRun contains the core logic for the set-key command.
// It accepts dependencies (keyring client, writer) for testability.
func configSetKeyRun(kc KeyringClient, writer io.Writer, apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ErrEmptyAPIKey
	}

	log.Info().Msgf("Attempting to store API key in keychain for service '%s'...", config.KeyringServiceName)

	err := kc.Set(config.KeyringServiceName, config.KeyringUserName, apiKey)
	if err != nil {
		log.Error().Err(err).Msg("Failed to store API key in keychain")
		return fmt.Errorf("failed to store API key in keychain: %w", err)
	}

	log.Info().Msg("API key stored successfully in keychain.")
	fmt.Fprintln(writer, "API key stored successfully.")
	return nil
}

func init() {
	configCmd.AddCommand(setKeyCmd)
}
