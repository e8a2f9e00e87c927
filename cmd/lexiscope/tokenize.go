package main

import (
	"github.com/spf13/cobra"

	"lexiscope/internal/charclass"
	"lexiscope/internal/diagfmt"
	"lexiscope/internal/lexer"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] [file|-]",
		Short: "Print the token sequence of the input",
		Long:  `Tokenize breaks the input into maximal tokens; concatenating their values gives back the input`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTokenize,
	}
	addInputFlags(cmd)
	cmd.Flags().Bool("whitespace", false, "also list whitespace tokens (pretty)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	withSpace, err := cmd.Flags().GetBool("whitespace")
	if err != nil {
		return err
	}
	_, text, err := readSingleInput(cmd, args)
	if err != nil {
		return err
	}

	tokens := lexer.Tokenize(text, charclass.ClassifyAll(text))
	if format == "json" {
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	}
	return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, withSpace)
}
