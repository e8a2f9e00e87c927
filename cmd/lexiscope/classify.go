package main

import (
	"github.com/spf13/cobra"

	"lexiscope/internal/charclass"
	"lexiscope/internal/diagfmt"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [flags] [file|-]",
		Short: "Print one classified record per character",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			_, text, err := readSingleInput(cmd, args)
			if err != nil {
				return err
			}
			chars := charclass.ClassifyAll(text)
			if format == "json" {
				return diagfmt.FormatCharactersJSON(cmd.OutOrStdout(), chars)
			}
			return diagfmt.FormatCharactersPretty(cmd.OutOrStdout(), chars)
		},
	}
	addInputFlags(cmd)
	return cmd
}
