// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// CaseMode identifies the case-conversion style applied to a file.
// Per prd001-casing R1.1.
type CaseMode string

const (
	CaseUpper    CaseMode = "upper"
	CaseLower    CaseMode = "lower"
	CaseTitle    CaseMode = "title"
	CaseSentence CaseMode = "sentence"
)

// ParseCaseMode maps a user-facing mode name to a CaseMode. Both full names
// ("upper") and the single-letter short forms ("u") are accepted, case
// insensitively.
func ParseCaseMode(s string) (CaseMode, error) {
	switch s {
	case "u", "U", "upper", "UPPER", "Upper":
		return CaseUpper, nil
	case "l", "L", "lower", "LOWER", "Lower":
		return CaseLower, nil
	case "t", "T", "title", "TITLE", "Title":
		return CaseTitle, nil
	case "s", "S", "sentence", "SENTENCE", "Sentence":
		return CaseSentence, nil
	}
	return "", fmt.Errorf("unknown case mode %q (want upper, lower, title, or sentence)", s)
}

// Valid reports whether m is one of the four recognized modes.
func (m CaseMode) Valid() bool {
	switch m {
	case CaseUpper, CaseLower, CaseTitle, CaseSentence:
		return true
	}
	return false
}
