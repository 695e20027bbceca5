package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is set during build time (e.g., via ldflags)
// Default is "dev" for local development.
var version = "dev"

var (
	logLevel string
	// Log is the globally configured zerolog logger instance used throughout the cmd package.
	// It's initialized in rootCmd's PersistentPreRunE based on the --log-level flag.
	Log zerolog.Logger
)

const (
	rootUse   = "scold"
	rootShort = "혼내줘 AI - get scolded by the persona of your choice"
	rootLong  = `scold serves the "혼내줘 AI" web app and its scolding API.

Pick a persona (friend, principal or grandma), tell it what you are putting
off and by when, and it generates a short scolding with the next concrete
action, using an OpenAI-compatible chat completion API.

Run 'scold serve' to start the server, then open it in a browser or use
'scold ask' from a terminal.`
)

// configureLogger sets up the global zerolog logger based on the logLevel flag.
// This is extracted to be reusable by both the package-level rootCmd and NewRootCmd.
func configureLogger(levelStr string) error {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		log.Warn().Msgf("Invalid log level '%s', defaulting to 'info'", levelStr)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	Log = log.Logger.With().Timestamp().Logger()

	Log.Debug().Msgf("Log level set to '%s'", level.String())
	return nil
}

// persistentPreRunLogic contains the logic for PersistentPreRunE, reusable by NewRootCmd.
func persistentPreRunLogic(cmd *cobra.Command, args []string) error {
	showVersion, _ := cmd.Flags().GetBool("version")
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		os.Exit(0)
	}
	lvl, _ := cmd.Flags().GetString("log-level")
	return configureLogger(lvl)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:               rootUse,
	Short:             rootShort,
	Long:              rootLong,
	PersistentPreRunE: persistentPreRunLogic,
	SilenceUsage:      true,
}

// Execute is the main entry point for the Cobra CLI application.
// It is called directly from main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Ensure logger is initialized even if PersistentPreRunE failed early
		if Log.GetLevel() == zerolog.Disabled {
			_ = configureLogger("info")
		}
		Log.Error().Err(err).Msg("Command execution failed")
		os.Exit(1)
	}
}

// NewRootCmd creates a new instance of the root command, configured for testing or embedding.
// It mirrors the setup of the package-level rootCmd.
func NewRootCmd() *cobra.Command {
	newCmd := &cobra.Command{
		Use:               rootUse,
		Short:             rootShort,
		Long:              rootLong,
		PersistentPreRunE: persistentPreRunLogic,
		SilenceUsage:      true,
	}
	addPersistentFlags(newCmd, new(string))

	newCmd.AddCommand(configCmd)
	newCmd.AddCommand(serveCmd)
	newCmd.AddCommand(askCmd)
	newCmd.AddCommand(personasCmd)
	newCmd.AddCommand(completionCmd)

	return newCmd
}

// addPersistentFlags defines the flags shared by every subcommand.
func addPersistentFlags(c *cobra.Command, level *string) {
	c.PersistentFlags().StringVar(level, "log-level", "info", "Set log level (debug, info, warn, error, fatal, panic)")
	c.PersistentFlags().Bool("version", false, "Show application version")
	c.PersistentFlags().StringP("output", "o", "text", "Output format (text|json|yaml)")
	c.PersistentFlags().String("config-dir", "", "Configuration directory (default $SCOLDME_CONFIG_DIR or ~/.scoldme)")
}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(scold completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ scold completion bash > /etc/bash_completion.d/scold
  # macOS:
  $ scold completion bash > /usr/local/etc/bash_completion.d/scold

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ scold completion zsh > "${fpath[1]}/_scold"

Fish:
  $ scold completion fish | source

  # To load completions for each session, execute once:
  $ scold completion fish > ~/.config/fish/completions/scold.fish

PowerShell:
  PS> scold completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root()
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(out)
		case "zsh":
			return root.GenZshCompletion(out)
		case "fish":
			return root.GenFishCompletion(out, true)
		case "powershell":
			return root.GenPowerShellCompletionWithDesc(out)
		default:
			return fmt.Errorf("unsupported shell type %q", args[0])
		}
	},
}

func init() {
	addPersistentFlags(rootCmd, &logLevel)
	rootCmd.AddCommand(completionCmd)
}
