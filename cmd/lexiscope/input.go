package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readSingleInput returns the text of --text, the named file, or stdin
// (no argument or "-"), together with a display name.
func readSingleInput(cmd *cobra.Command, args []string) (name, text string, err error) {
	if f := cmd.Flags().Lookup("text"); f != nil && f.Changed {
		return textName, f.Value.String(), nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return stdinName, string(data), nil
	}
	// #nosec G304 -- path is provided by the user
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("text", "", "use this string instead of a file")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func formatFlag(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
		return format, nil
	}
	return "", fmt.Errorf("unknown format: %s", format)
}
