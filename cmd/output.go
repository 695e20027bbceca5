package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// writeOutput renders v in the --output format. Text output is delegated to renderText.
func writeOutput(w io.Writer, format string, v any, renderText func(io.Writer) error) error {
	switch strings.ToLower(format) {
	case "", "text":
		return renderText(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q (use text, json or yaml)", ErrUnsupportedOutput, format)
	}
}
