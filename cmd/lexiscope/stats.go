package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"lexiscope/internal/analysis"
	"lexiscope/internal/diagfmt"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [flags] [file|-]",
		Short: "Print character and token statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	addInputFlags(cmd)
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	_, text, err := readSingleInput(cmd, args)
	if err != nil {
		return err
	}
	res := analysis.AnalyzeWithOptions(cmd.Context(), text, analysis.Options{})
	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Statistics); err != nil {
			return fmt.Errorf("encode statistics: %w", err)
		}
		return nil
	}
	return diagfmt.FormatStatsPretty(cmd.OutOrStdout(), res.Statistics)
}
