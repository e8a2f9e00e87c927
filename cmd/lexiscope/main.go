package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lexiscope/internal/version"
)

// exitError carries a process exit status without printing anything:
// diagnostics were already written.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// newRootCmd builds the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lexiscope",
		Short: "Character and token level source analyzer",
		Long: `lexiscope classifies source text character by character, tokenizes it,
runs lexical, syntactic and semantic checks and reports diagnostics and statistics`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			for _, setup := range []func(*cobra.Command) (func(error), error){setupProfiling, setupTracing} {
				cleanup, err := setup(cmd)
				if err != nil {
					finishRun(err)
					return err
				}
				runCleanups = append(runCleanups, cleanup)
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			finishRun(nil)
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("config", "", "path to lexiscope.toml (default: search upwards from the working directory)")
	pf.String("color", "", "colorize output (auto|on|off; default from config)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Int("trace-ring-size", 4096, "ring buffer capacity for --trace-mode ring|both")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")

	root.AddCommand(
		newAnalyzeCmd(),
		newTokenizeCmd(),
		newClassifyCmd(),
		newStatsCmd(),
		newWatchCmd(),
		newCacheCmd(),
		newVersionCmd(),
	)
	return root
}

// main executes the root command and maps errors to exit statuses:
// exitError keeps its code, anything else prints and exits with 1.
func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	// PersistentPostRun не вызывается при ошибке
	finishRun(err)
	var ee exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}
	fmt.Fprintf(os.Stderr, "lexiscope: %v\n", err)
	os.Exit(1)
}

// runCleanups are installed by PersistentPreRunE and run in reverse order.
var runCleanups []func(failure error)

// finishRun runs and forgets the pending cleanups.
func finishRun(failure error) {
	for i := len(runCleanups) - 1; i >= 0; i-- {
		runCleanups[i](failure)
	}
	runCleanups = nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
