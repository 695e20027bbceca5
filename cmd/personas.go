package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/karolswdev/scoldme/internal/scold"
)

// personasCmd represents the personas command
var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the scolding personas, moods and conditions",
	Long: `Prints the persona catalog together with the accepted mood and condition
codes. Use -o json or -o yaml to include each persona's system prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("output")
		return personasRunE(cmd.OutOrStdout(), format)
	},
}

func init() {
	rootCmd.AddCommand(personasCmd)
}

// catalogView is the structured form of `personas -o json|yaml`.
type catalogView struct {
	Personas   []scold.Persona         `json:"personas" yaml:"personas"`
	Moods      []scold.MoodOption      `json:"moods" yaml:"moods"`
	Conditions []scold.ConditionOption `json:"conditions" yaml:"conditions"`
}

func personasRunE(writer io.Writer, format string) error {
	view := catalogView{
		Personas:   scold.Personas(),
		Moods:      scold.Moods(),
		Conditions: scold.Conditions(),
	}
	return writeOutput(writer, format, view, func(w io.Writer) error {
		fmt.Fprintln(w, "Personas:")
		for _, p := range view.Personas {
			fmt.Fprintf(w, "  %-10s %s %s: %s\n", p.Character, p.Emoji, p.Title, p.Description)
		}
		fmt.Fprintln(w, "Moods:")
		for _, m := range view.Moods {
			fmt.Fprintf(w, "  %-10s %s\n", m.Mood, m.Label)
		}
		fmt.Fprintln(w, "Conditions:")
		for _, c := range view.Conditions {
			fmt.Fprintf(w, "  %-13s %s\n", c.Code, c.Label)
		}
		return nil
	})
}
