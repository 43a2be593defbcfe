package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newMinifyCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "minify [file]",
		Short: "Compact JSON",
		Long:  "Strips all insignificant whitespace from JSON read from a file or stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMinify(cmd, args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runMinify(cmd *cobra.Command, args []string, output string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		result, err := d.FormatHandler.HandleMinify(cmd.Context(), text)
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

		return writeOutput(cmd, output, result.Output)
	})
}
