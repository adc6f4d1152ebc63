// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package casing implements the per-line case transforms.
// Implements: prd001-casing (R1, R2, R3).
package casing

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/textcase/pkg/types"
)

// Transformer converts one line of text at a time. Implementations may carry
// state between calls (sentence case does); a Transformer instance is valid
// for exactly one file pass.
type Transformer interface {
	// Line returns the converted form of one line. The input may or may not
	// carry a trailing newline; stateless transforms preserve it verbatim.
	Line(line string) string
}

// ForMode returns a fresh Transformer for the given mode. Sentence mode
// returns a stateful transformer initialized to "not mid-sentence"; the other
// modes are stateless.
func ForMode(mode types.CaseMode) (Transformer, error) {
	switch mode {
	case types.CaseUpper:
		return transformFunc(strings.ToUpper), nil
	case types.CaseLower:
		return transformFunc(strings.ToLower), nil
	case types.CaseTitle:
		// A fresh caser per pass: cases.Caser is not safe for concurrent use.
		return transformFunc(cases.Title(language.English).String), nil
	case types.CaseSentence:
		return &sentenceTransformer{}, nil
	}
	return nil, fmt.Errorf("unsupported case mode %q", mode)
}

// transformFunc adapts a stateless string function to Transformer.
type transformFunc func(string) string

func (f transformFunc) Line(line string) string { return f(line) }

// sentenceTransformer threads the mid-sentence flag across successive lines.
type sentenceTransformer struct {
	midSentence bool
}

func (t *sentenceTransformer) Line(line string) string {
	out, mid := ToSentenceCase(line, t.midSentence)
	t.midSentence = mid
	return out
}

// ToSentenceCase converts one line to sentence case and reports whether the
// line ended a sentence (trimmed line ends with a period).
//
// The line is split on the literal delimiter ". " — a heuristic, not real
// sentence-boundary detection; it misfires on abbreviations, decimal numbers
// and ellipses. When midSentence is true the first segment is lower-cased as
// a continuation of the previous line's sentence; every later segment on the
// same line starts a fresh sentence and is capitalized regardless. Trailing
// whitespace is stripped and exactly one newline appended.
func ToSentenceCase(line string, midSentence bool) (string, bool) {
	completedSentence := strings.HasSuffix(strings.TrimSpace(line), ".")

	segments := strings.Split(line, ". ")
	for i, segment := range segments {
		if i == 0 && midSentence {
			segments[i] = strings.ToLower(segment)
		} else {
			segments[i] = Capitalize(segment)
		}
	}

	joined := strings.TrimRightFunc(strings.Join(segments, ". "), unicode.IsSpace)
	return joined + "\n", completedSentence
}

// Capitalize upper-cases the first rune of s and lower-cases the remainder.
// A leading non-letter is left in place with the rest still lower-cased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
