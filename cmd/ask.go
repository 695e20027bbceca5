package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/karolswdev/scoldme/internal/scold"
	"github.com/karolswdev/scoldme/internal/ui"
)

// incompleteAlert is shown when submit is attempted before the required fields are filled in.
const incompleteAlert = "캐릭터, 미루고 있는 일, 마감일을 모두 입력해주세요!"

const loadingTitle = "혼내는 중..."

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Get scolded from the terminal",
	Long: `Collects the persona, task, deadline, mood and extra conditions and sends
them to a running 'scold serve'. Fields given as flags are used as-is; when a
required field is missing and stdin is a terminal, an interactive form asks
for the rest.

Example:
  scold ask --character grandma --task "보고서 작성" --deadline "내일 오전 9시" --mood doomed --condition d-day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config-dir")
		cfg, err := (&DefaultConfigProvider{BaseDir: configDir}).LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}

		serverURL, _ := cmd.Flags().GetString("server")
		if serverURL == "" {
			serverURL = cfg.Client.ServerURL
		}
		client, err := ui.NewClient(serverURL)
		if err != nil {
			return err
		}

		values := &ui.FormValues{}
		values.Character, _ = cmd.Flags().GetString("character")
		values.Task, _ = cmd.Flags().GetString("task")
		values.Deadline, _ = cmd.Flags().GetString("deadline")
		values.Mood, _ = cmd.Flags().GetString("mood")
		values.Conditions, _ = cmd.Flags().GetStringSlice("condition")
		format, _ := cmd.Flags().GetString("output")

		env := askEnv{
			interactive: isInteractive(),
			runForm:     runHuhForm,
			spin:        runWithSpinner,
		}
		return askRunE(cmd.Context(), values, client, env, cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
	},
}

func init() {
	askCmd.Flags().String("character", "", "Persona: friend, principal or grandma")
	askCmd.Flags().String("task", "", "What you are putting off")
	askCmd.Flags().String("deadline", "", "Deadline or target time, free text")
	askCmd.Flags().String("mood", string(scold.MoodOkay), "Current state: okay, lazy or doomed")
	askCmd.Flags().StringSlice("condition", nil, "Extra condition code (d-day, incomplete, below-target); repeatable")
	askCmd.Flags().String("server", "", "scold server URL (overrides client.server_url from config)")
	rootCmd.AddCommand(askCmd)
}

// askEnv holds the terminal-facing pieces of `scold ask` so tests can replace them.
type askEnv struct {
	interactive bool
	runForm     func(v *ui.FormValues) error
	spin        func(ctx context.Context, title string, action func()) error
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func runHuhForm(v *ui.FormValues) error {
	return ui.NewForm(v).Run()
}

func runWithSpinner(ctx context.Context, title string, action func()) error {
	return spinner.New().Title(title).Context(ctx).Action(action).Run()
}

// askRunE fills the form state, sends it through sender and renders the result.
// Nothing is sent while character, task or deadline is missing.
func askRunE(ctx context.Context, values *ui.FormValues, sender ui.Sender, env askEnv, out, errOut io.Writer, format string) error {
	state := ui.NewState()
	if err := values.Apply(state); err != nil {
		return err
	}

	if !state.Complete() && env.interactive {
		formValues := ui.ValuesFromState(state)
		if err := env.runForm(formValues); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form failed: %w", err)
		}
		if err := formValues.Apply(state); err != nil {
			return err
		}
	}

	if !state.Complete() {
		fmt.Fprintln(errOut, incompleteAlert)
		return ui.ErrIncomplete
	}

	if env.interactive && format == "text" {
		fmt.Fprintln(out, ui.RenderPersonaCards(state.Character))
	}

	var sendErr error
	send := func() { sendErr = state.Send(ctx, sender) }
	if env.interactive {
		if err := env.spin(ctx, loadingTitle, send); err != nil {
			return err
		}
	} else {
		send()
	}

	if sendErr != nil {
		if format == "text" {
			fmt.Fprintln(errOut, ui.RenderFailure(sendErr))
		}
		return sendErr
	}

	return writeOutput(out, format, scold.Response{Message: state.Message}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, ui.RenderResult(state.Message, state.Character))
		return err
	})
}
