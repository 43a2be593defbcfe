package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/jsonlens/internal/application/handlers"
	"github.com/ersonp/jsonlens/internal/domain/entities"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect past operations",
		Long:  "Lists, shows, and clears recorded validate/format/minify operations.",
	}

	cmd.AddCommand(
		newHistoryListCmd(),
		newHistoryShowCmd(),
		newHistoryClearCmd(),
	)

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryListLimit, "Maximum number of entries to display")

	return cmd
}

func runHistoryList(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()

	return withHistoryHandler(func(h *handlers.HistoryHandler) error {
		entries, total, err := h.HandleList(ctx, limit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No history entries found.")
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d entries:\n\n", len(entries), total)
		for _, entry := range entries {
			displayEntry(cmd, entry)
		}
		return nil
	})
}

func displayEntry(cmd *cobra.Command, entry *entities.Entry) {
	status := "valid"
	if !entry.Valid {
		status = "invalid"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", entry.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s  %s\n", entry.Operation, status, entry.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(cmd.OutOrStdout(), "  Input: %s\n", previewText(entry.Input, MaxInputPreviewLen))
	if entry.ErrorMsg != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  Error: %s\n", entry.ErrorMsg)
	}
	fmt.Fprintln(cmd.OutOrStdout())
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recorded operation in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(cmd, args[0])
		},
	}
}

func runHistoryShow(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()

	return withHistoryHandler(func(h *handlers.HistoryHandler) error {
		entry, err := h.HandleShow(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:        %s\n", entry.ID)
		fmt.Fprintf(out, "Operation: %s\n", entry.Operation)
		fmt.Fprintf(out, "Created:   %s\n", entry.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Input:\n%s\n", entry.Input)
		if entry.Valid {
			if entry.Output != "" {
				fmt.Fprintf(out, "Output:\n%s\n", entry.Output)
			}
		} else {
			fmt.Fprintf(out, "Error: %s\n", entry.ErrorMsg)
		}
		return nil
	})
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded operations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear(cmd)
		},
	}
}

func runHistoryClear(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withHistoryHandler(func(h *handlers.HistoryHandler) error {
		n, err := h.HandleClear(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d entries.\n", n)
		return nil
	})
}
