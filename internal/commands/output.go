// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	formatAuto = "auto"
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// resolveFormat turns "auto" into text for terminals and yaml for pipes.
func resolveFormat(w io.Writer, format string) (string, error) {
	switch format {
	case formatText, formatJSON, formatYAML:
		return format, nil
	case formatAuto:
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return formatText, nil
		}
		return formatYAML, nil
	}

	return "", fmt.Errorf("%w: %q (use text, json, yaml or auto)", errBadFormat, format)
}

// render writes v in the selected format; text delegates to the command's
// own plain-text layout.
func (o *rootOptions) render(cmd *cobra.Command, v any, text func(io.Writer) error) error {
	w := cmd.OutOrStdout()
	format, err := resolveFormat(w, o.format)
	if err != nil {
		return err
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// joinValues renders a slice as space-separated values.
func joinValues[T any](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " ")
}
