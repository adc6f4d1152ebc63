// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/textcase/internal/history"
	"github.com/pdiddy/textcase/internal/rewrite"
	"github.com/pdiddy/textcase/internal/textfile"
	"github.com/pdiddy/textcase/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Rewrite a text file in the chosen case",
	Long: `Convert rewrites the given file in place using the selected case mode:
upper, lower, title, or sentence. Sentence case capitalizes the first letter
of each sentence and carries unterminated sentences across line breaks.

The file is streamed line by line, so files larger than memory are fine. The
original is replaced only after the whole conversion succeeds; any failure
leaves it untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	caseName, _ := cmd.Flags().GetString("case")
	if caseName == "" {
		caseName = viper.GetString("default_case")
	}
	if caseName == "" {
		return fmt.Errorf("case mode required: pass --case or set default_case in the config file")
	}

	mode, err := types.ParseCaseMode(caseName)
	if err != nil {
		return err
	}

	cfg := types.ConvertConfig{Path: args[0], Mode: mode}
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		ok, derr := textfile.IsTextFile(cfg.Path, textfile.DefaultDetectConfig())
		if derr != nil {
			return derr
		}
		if !ok {
			return fmt.Errorf("%s does not look like a plain-text file (use --force to convert anyway)", cfg.Path)
		}
	}

	return convertAndRecord(cmd, cfg)
}

// convertAndRecord runs the conversion and, on success, appends a journal
// entry. Journal failures are warnings: the file is already converted.
func convertAndRecord(cmd *cobra.Command, cfg types.ConvertConfig) error {
	start := time.Now()
	result, err := rewrite.ConvertFile(cfg.Path, cfg.Mode)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "converted: %s to %s-case (%d lines, %d bytes)\n",
		cfg.Path, cfg.Mode, result.Lines, result.Bytes)

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if noHistory {
		return nil
	}

	store, err := history.Open(historyConfig(cmd))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return nil
	}
	defer store.Close()

	entry := history.Entry{
		Path:     cfg.Path,
		Mode:     cfg.Mode,
		Lines:    result.Lines,
		Bytes:    result.Bytes,
		Duration: elapsed,
	}
	if err := store.Record(context.Background(), entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
	}
	return nil
}

// historyConfig resolves the journal directory from the flag, the config
// file, or the user data directory, in that order.
func historyConfig(cmd *cobra.Command) types.HistoryConfig {
	dir, _ := cmd.Flags().GetString("history-dir")
	if dir == "" {
		dir = viper.GetString("history_dir")
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".local", "share", "textcase")
	}

	return types.HistoryConfig{
		Dir:        dir,
		MaxResults: viper.GetInt("history_max_results"),
	}
}

func init() {
	convertCmd.Flags().StringP("case", "c", "", "case mode: upper, lower, title, or sentence")
	convertCmd.Flags().Bool("force", false, "skip the plain-text file check")
	convertCmd.Flags().Bool("no-history", false, "do not record the conversion in the journal")

	rootCmd.AddCommand(convertCmd)
}
