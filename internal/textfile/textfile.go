// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textfile estimates whether a file holds plain text before a
// conversion is allowed to rewrite it.
package textfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/textcase/pkg/types"
)

// DefaultDetectConfig returns the standard detection thresholds: a 32 KiB
// sample, 90% printable ASCII for arbitrary files, relaxed to 75% for files
// with a .txt extension.
func DefaultDetectConfig() types.DetectConfig {
	return types.DetectConfig{
		SampleSize:         32 * 1024,
		MinASCIIProportion: 0.9,
		TxtASCIIProportion: 0.75,
	}
}

// IsTextFile reports whether the file at path is likely plain text, by
// sampling its head and measuring the proportion of printable-ASCII bytes
// against the decoded character count. The sample must be valid UTF-8.
//
// This is a heuristic tuned for Latin text; it will reject files of mostly
// Cyrillic or CJK content even when they are perfectly valid text.
func IsTextFile(path string, cfg types.DetectConfig) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sample := make([]byte, cfg.SampleSize)
	n, err := io.ReadFull(f, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("sampling %s: %w", path, err)
	}
	sample = sample[:n]

	// The cut may land mid-rune; drop the incomplete tail before validating.
	sample = trimPartialRune(sample)
	if !utf8.Valid(sample) {
		return false, nil
	}

	asciiCount := 0
	for _, b := range sample {
		if isPrintableASCII(b) {
			asciiCount++
		}
	}

	runeCount := utf8.RuneCount(sample)
	if runeCount == 0 {
		// An empty file is trivially text.
		return true, nil
	}

	minProportion := cfg.MinASCIIProportion
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		minProportion = cfg.TxtASCIIProportion
	}
	return float64(asciiCount) > minProportion*float64(runeCount), nil
}

// trimPartialRune removes an incomplete trailing UTF-8 sequence caused by the
// fixed-size sample cut.
func trimPartialRune(b []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size != 1 {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}

func isPrintableASCII(b byte) bool {
	if b >= 0x20 && b < 0x7f {
		return true
	}
	return b == '\t' || b == '\n' || b == '\r'
}
