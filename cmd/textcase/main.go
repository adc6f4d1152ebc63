// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the textcase CLI.
// Implements: prd001-casing, prd002-rewrite, prd003-history (CLI surface).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the textcase CLI. Run without a subcommand
// it drops into the interactive flow, matching the tool's prompt-driven
// origin; scripted callers use the convert subcommand.
var rootCmd = &cobra.Command{
	Use:   "textcase",
	Short: "Convert the character case of a text file in place",
	Long: `textcase rewrites a text file in upper, lower, title, or sentence case.
Files are processed line by line through a temporary scratch file, so memory
use stays bounded regardless of file size, and the original file is replaced
only after the whole conversion succeeds.

Run with no arguments for the interactive flow, or use the convert
subcommand directly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd, args)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./textcase.yaml or ~/.config/textcase/config.yaml)")
	rootCmd.PersistentFlags().String("history-dir", "", "directory for the conversion journal (default: ~/.local/share/textcase)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("textcase")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "textcase"))
		}
	}

	viper.SetEnvPrefix("TEXTCASE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
