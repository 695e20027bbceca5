package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karolswdev/scoldme/internal/config"
)

// configShowCmd represents the show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current scoldme configuration",
	Long: `Displays the currently loaded configuration values from config.yaml,
SCOLDME_* environment variables and defaults. The API key itself is never
printed, only whether one is available.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config-dir")
		provider, err := GetProvider(configDir)
		if err != nil {
			return fmt.Errorf("failed to get service provider: %w", err)
		}
		format, _ := cmd.Flags().GetString("output")
		return configShowRunE(provider.Config, provider.Keyring, cmd.OutOrStdout(), format)
	},
}

// configView is the structured form of `config show -o json|yaml`.
type configView struct {
	Config       *config.AppConfig `json:"config" yaml:"config"`
	APIKeyStatus string            `json:"api_key_status" yaml:"api_key_status"`
}

const (
	apiKeyStatusSet     = "set"
	apiKeyStatusNotSet  = "not_set"
	apiKeyStatusUnknown = "unknown"
)

// apiKeyStatus reports whether a key is available without revealing it.
func apiKeyStatus(keyringClient KeyringClient) (status string, detail error) {
	_, err := keyringClient.GetAPIKey(config.KeyringServiceName, config.KeyringUserName)
	switch {
	case err == nil:
		return apiKeyStatusSet, nil
	case errors.Is(err, config.ErrAPIKeyNotFound):
		return apiKeyStatusNotSet, nil
	default:
		return apiKeyStatusUnknown, err
	}
}

// configShowRunE contains the core logic for the 'config show' command.
func configShowRunE(cfgProvider ConfigProvider, keyringClient KeyringClient, writer io.Writer, format string) error {
	cfg, err := cfgProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	status, statusErr := apiKeyStatus(keyringClient)
	view := configView{Config: cfg, APIKeyStatus: status}

	return writeOutput(writer, format, view, func(w io.Writer) error {
		fmt.Fprintln(w, "Current scoldme Configuration:")
		fmt.Fprintf(w, "  Server Address: %s\n", cfg.Server.Addr)
		fmt.Fprintf(w, "  CORS Origins:   %s\n", strings.Join(cfg.Server.AllowedOrigins, ", "))
		fmt.Fprintf(w, "  Client Server:  %s\n", cfg.Client.ServerURL)
		fmt.Fprintf(w, "  LLM Provider:   %s\n", cfg.LLM.Provider)
		switch cfg.LLM.Provider {
		case "openai":
			fmt.Fprintf(w, "    OpenAI Model: %s\n", cfg.LLM.OpenAI.ModelName)
			if cfg.LLM.OpenAI.BaseURL != "" {
				fmt.Fprintf(w, "    OpenAI BaseURL: %s\n", cfg.LLM.OpenAI.BaseURL)
			}
			fmt.Fprintf(w, "    Temperature:  %.2f\n", cfg.LLM.OpenAI.Temperature)
			fmt.Fprintf(w, "    Max Tokens:   %d\n", cfg.LLM.OpenAI.MaxTokens)
		default:
			fmt.Fprintf(w, "    (No specific settings shown for provider '%s')\n", cfg.LLM.Provider)
		}

		var keyLine string
		switch status {
		case apiKeyStatusSet:
			keyLine = "Set (use 'scold config set-key' to change)"
		case apiKeyStatusNotSet:
			keyLine = "Not Set (use 'scold config set-key' to set)"
		default:
			keyLine = fmt.Sprintf("Status Unknown (error checking keychain/env: %v)", statusErr)
		}
		fmt.Fprintf(w, "  LLM API Key:    %s\n", keyLine)
		return nil
	})
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
