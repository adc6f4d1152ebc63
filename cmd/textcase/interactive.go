// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/textcase/internal/prompt"
	"github.com/pdiddy/textcase/pkg/types"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Choose a file and case mode through prompts",
	Long: `Interactive walks through the conversion options with prompts: the case
mode, the file to convert, and a confirmation. Enter 'q' at any prompt to
quit without converting.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

// caseModes maps the short prompt letters to case modes.
var caseModes = map[string]types.CaseMode{
	"u": types.CaseUpper,
	"l": types.CaseLower,
	"t": types.CaseTitle,
	"s": types.CaseSentence,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Utility for converting a text file to upper, lower, title, or sentence case.")
	fmt.Fprintln(out, "File names may be relative or fully qualified.")
	fmt.Fprintln(out, "Enter 'Q' to quit.")
	fmt.Fprintln(out)

	p := prompt.New(cmd.InOrStdin(), out)

	choice, err := p.Choice("Case (upper, lower, title, sentence) [U/L/T/S]", "u", "l", "t", "s")
	if err != nil {
		return quitOrErr(out, err)
	}
	mode := caseModes[choice]

	path, err := p.FilePath()
	if err != nil {
		return quitOrErr(out, err)
	}

	fmt.Fprintf(out, "Converting %s to %s-case.\n", path, mode)
	return convertAndRecord(cmd, types.ConvertConfig{Path: path, Mode: mode})
}

// quitOrErr turns a user-requested quit into a clean exit; anything else is
// a real error.
func quitOrErr(out io.Writer, err error) error {
	if errors.Is(err, prompt.ErrQuit) {
		fmt.Fprintln(out, "Quitting application.")
		return nil
	}
	return err
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
