// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/textcase/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the journal of past conversions",
	Long: `History manages the local journal of completed conversions. Use
subcommands to list entries, export them to YAML or JSON, or clear the
journal.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversions, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-10s  %-40s  %8s  %10s  %s\n",
		"ID", "Mode", "Path", "Lines", "Bytes", "When")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, e := range entries {
		path := e.Path
		if len(path) > 40 {
			path = "..." + path[len(path)-37:]
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-10s  %-40s  %8d  %10d  %s\n",
			e.ID, e.Mode, path, e.Lines, e.Bytes,
			e.ConvertedAt.Local().Format("2006-01-02 15:04:05"))
	}

	fmt.Fprintf(os.Stdout, "\n%d entries\n", len(entries))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to YAML or JSON",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	output, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if jsonOutput {
		if output == "" {
			output = "textcase-history.json"
		}
		if err := store.ExportJSON(context.Background(), output); err != nil {
			return err
		}
	} else {
		if output == "" {
			output = "textcase-history.yaml"
		}
		if err := store.ExportYAML(context.Background(), output); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported: %s\n", output)
	return nil
}

// --- clear subcommand ---

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all journal entries",
	RunE:  runHistoryClear,
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := store.Clear(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "cleared: %d entries\n", removed)
	return nil
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum number of entries to list (0 uses the configured default)")
	historyListCmd.Flags().Bool("json", false, "print entries as JSON")

	historyExportCmd.Flags().String("output", "", "output path (default: textcase-history.yaml or .json)")
	historyExportCmd.Flags().Bool("json", false, "export as JSON instead of YAML")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
