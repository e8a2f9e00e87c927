package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lexiscope/internal/config"
	"lexiscope/internal/diag"
)

// loadConfig reads --config or discovers lexiscope.toml from the working
// directory upwards. Missing files fall back to defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

// useColor resolves --color (or the config value) against the terminal.
func useColor(cmd *cobra.Command, cfg config.Config, out *os.File) (bool, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	if value == "" {
		value = cfg.Output.Color
	}
	switch strings.ToLower(value) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return out != nil && isTerminal(out), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// failOn maps --fail-on to the lowest severity that fails the run.
type failOn string

const (
	failOnError   failOn = "error"
	failOnWarning failOn = "warning"
	failOnNever   failOn = "never"
)

func parseFailOn(s string) (failOn, error) {
	switch f := failOn(strings.ToLower(strings.TrimSpace(s))); f {
	case failOnError, failOnWarning, failOnNever:
		return f, nil
	}
	return "", fmt.Errorf("invalid --fail-on value %q (expected error|warning|never)", s)
}

// exitCode: 0 - чисто, 1 - диагностики выше порога.
func (f failOn) exitCode(worst diag.Severity, ok bool) int {
	if !ok {
		return 0
	}
	switch f {
	case failOnError:
		if worst >= diag.SevError {
			return 1
		}
	case failOnWarning:
		if worst >= diag.SevWarning {
			return 1
		}
	}
	return 0
}

// stringFlag returns the flag when the user set it, else fallback.
func stringFlag(cmd *cobra.Command, name, fallback string) (string, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}

func boolFlag(cmd *cobra.Command, name string, fallback bool) (bool, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}

func intFlag(cmd *cobra.Command, name string, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}
