// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the interactive question-and-answer flow used
// when the CLI runs without arguments. All I/O goes through an injected
// reader and writer so the flow is testable without a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/textcase/internal/textfile"
	"github.com/pdiddy/textcase/pkg/types"
)

// ErrQuit is returned when the user enters 'q' at any prompt.
var ErrQuit = errors.New("quit requested")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	detect types.DetectConfig
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		detect: textfile.DefaultDetectConfig(),
	}
}

// Input prints label and returns the user's trimmed answer. Entering 'q' or
// 'Q' returns ErrQuit.
func (p *Prompter) Input(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		if err == io.EOF {
			return "", ErrQuit
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if strings.EqualFold(answer, "q") {
		return "", ErrQuit
	}
	return answer, nil
}

// Choice asks until the answer matches one of choices (case insensitive) and
// returns the matched choice in lower case.
func (p *Prompter) Choice(label string, choices ...string) (string, error) {
	for {
		answer, err := p.Input(label)
		if err != nil {
			return "", err
		}
		for _, c := range choices {
			if strings.EqualFold(answer, c) {
				return strings.ToLower(c), nil
			}
		}
		fmt.Fprintln(p.out, "Invalid choice.")
	}
}

// Confirm asks a yes/no question and returns the answer.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Choice(label+" [Y/N]", "y", "n")
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// FilePath asks for a file name until the user names an existing plain-text
// file and confirms the intention to rewrite it. The returned path is the
// one the user typed, not the resolved absolute path.
func (p *Prompter) FilePath() (string, error) {
	for {
		answer, err := p.Input("Enter file name")
		if err != nil {
			return "", err
		}
		if answer == "" {
			continue
		}

		ok, derr := textfile.IsTextFile(answer, p.detect)
		if derr != nil {
			fmt.Fprintf(p.out, "Error. %v\n", derr)
			continue
		}
		if !ok {
			fmt.Fprintf(p.out, "Invalid file: %s\n", answer)
			continue
		}

		abs, aerr := filepath.Abs(answer)
		if aerr != nil {
			abs = answer
		}
		confirmed, cerr := p.Confirm(fmt.Sprintf("Update %s", abs))
		if cerr != nil {
			return "", cerr
		}
		if confirmed {
			return answer, nil
		}
	}
}
