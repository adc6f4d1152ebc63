// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared types passed between the CLI surface and
// the internal stages.
package types

// ConvertConfig holds one conversion request: a validated file path and the
// selected case mode. Constructed once by the CLI or interactive layer and
// passed into the core; the core keeps no ambient state.
type ConvertConfig struct {
	// Path is the file to rewrite in place.
	Path string `json:"path" yaml:"path"`

	// Mode is the case-conversion style to apply.
	Mode CaseMode `json:"mode" yaml:"mode"`
}

// HistoryConfig holds settings for the conversion journal.
// Per prd003-history R1.2.
type HistoryConfig struct {
	// Dir is the directory holding the journal database and exports.
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults caps the number of entries returned by listings (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// DetectConfig holds thresholds for the plain-text file heuristic.
// Per prd002-rewrite R4.1-R4.3.
type DetectConfig struct {
	// SampleSize is the maximum number of bytes read for detection (default 32 KiB).
	SampleSize int `json:"sample_size" yaml:"sample_size"`

	// MinASCIIProportion is the minimum proportion of printable-ASCII bytes
	// required for non-.txt files (default 0.9).
	MinASCIIProportion float64 `json:"min_ascii_proportion" yaml:"min_ascii_proportion"`

	// TxtASCIIProportion is the relaxed proportion for files with a .txt
	// extension (default 0.75).
	TxtASCIIProportion float64 `json:"txt_ascii_proportion" yaml:"txt_ascii_proportion"`
}
