package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type formatFlags struct {
	indent int
	output string
}

func newFormatCmd() *cobra.Command {
	var flags formatFlags

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Pretty-print JSON",
		Long:  "Reindents JSON from a file or stdin, preserving key order and numeric literals.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.indent, "indent", "i", 0, "Indent width in spaces (default from config)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runFormat(cmd *cobra.Command, args []string, flags formatFlags) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		indent := flags.indent
		if indent <= 0 {
			indent = d.Config.Format.Indent
		}

		result, err := d.FormatHandler.Handle(cmd.Context(), text, indent)
		if err != nil {
			return err
		}

		if !result.Valid {
			if result.Position != nil {
				fmt.Fprintln(cmd.OutOrStdout(), d.Snippet.Render(text, *result.Position, result.Message))
				return errors.New("invalid JSON")
			}
			return errors.New(result.Message)
		}

		return writeOutput(cmd, flags.output, result.Output)
	})
}
