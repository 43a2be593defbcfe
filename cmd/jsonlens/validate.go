package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check whether input is valid JSON",
		Long:  "Validates JSON from a file or stdin and reports the error location on failure.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the error snippet")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, quiet bool) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		result, err := d.ValidateHandler.Handle(cmd.Context(), text)
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintln(cmd.OutOrStdout(), "Valid JSON.")
			return nil
		}

		if !quiet && result.Position != nil {
			fmt.Fprintln(cmd.OutOrStdout(), d.Snippet.Render(text, *result.Position, result.Message))
			return errors.New("invalid JSON")
		}
		return errors.New(result.Message)
	})
}
