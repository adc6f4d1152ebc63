// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite applies a case transform to a whole file, streaming line by
// line through a temporary scratch file and committing atomically.
// Implements: prd002-rewrite (R1-R5).
package rewrite

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pdiddy/textcase/internal/casing"
	"github.com/pdiddy/textcase/pkg/types"
)

// Sentinel errors classifying conversion failures. Callers check them with
// errors.Is; the wrapped message carries the detail.
var (
	// ErrInvalidMode means the requested case mode is not one of the four
	// recognized values. Reported before any file access.
	ErrInvalidMode = errors.New("unsupported case mode")

	// ErrSourceUnreadable means the source file is missing, not readable, or
	// not decodable as UTF-8 text.
	ErrSourceUnreadable = errors.New("source file unreadable")

	// ErrTargetUnwritable means the commit-time overwrite of the original
	// path failed. When the target cannot be opened for writing the original
	// is untouched; an I/O fault during the copy itself can leave it
	// partially written, as with any in-place overwrite.
	ErrTargetUnwritable = errors.New("target file not writable")
)

// Result summarizes one completed conversion.
type Result struct {
	// Lines is the number of lines written to the target.
	Lines int

	// Bytes is the number of transformed bytes committed.
	Bytes int64
}

// ConvertFile rewrites the file at path with the given case mode. The source
// is read strictly line by line, transformed output is staged in a temporary
// scratch file, and only after the whole pass succeeds is the scratch content
// copied over the original path. On any failure before that commit point the
// original file is left byte-for-byte unchanged; the scratch file is removed
// on every exit path.
func ConvertFile(path string, mode types.CaseMode) (Result, error) {
	transformer, err := casing.ForMode(mode)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	src, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer src.Close()

	scratch, err := os.CreateTemp("", "textcase-*")
	if err != nil {
		return Result{}, fmt.Errorf("creating scratch file: %w", err)
	}
	defer func() {
		scratch.Close()
		os.Remove(scratch.Name())
	}()

	result, err := transformLines(src, scratch, transformer)
	if err != nil {
		return Result{}, err
	}

	// Scratch must be durable before it becomes the source of the commit.
	if err := scratch.Sync(); err != nil {
		return Result{}, fmt.Errorf("flushing scratch file: %w", err)
	}
	src.Close()

	if err := commit(scratch, path); err != nil {
		return Result{}, err
	}
	return result, nil
}

// transformLines streams src through the transformer into scratch. Lines are
// delimited by '\n'; a final line without one is still transformed. Every
// line must be valid UTF-8.
func transformLines(src io.Reader, scratch io.Writer, t casing.Transformer) (Result, error) {
	reader := bufio.NewReader(src)
	writer := bufio.NewWriter(scratch)
	var result Result

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return Result{}, fmt.Errorf("reading source: %w", err)
		}
		if line != "" {
			if !utf8.ValidString(line) {
				return Result{}, fmt.Errorf("%w: line %d is not valid UTF-8 text", ErrSourceUnreadable, result.Lines+1)
			}
			converted := t.Line(line)
			n, werr := writer.WriteString(converted)
			if werr != nil {
				return Result{}, fmt.Errorf("writing scratch file: %w", werr)
			}
			result.Lines++
			result.Bytes += int64(n)
		}
		if err == io.EOF {
			break
		}
	}

	if err := writer.Flush(); err != nil {
		return Result{}, fmt.Errorf("writing scratch file: %w", err)
	}
	return result, nil
}

// commit copies the scratch content over the original path. This is the
// single point at which the target is modified: if the target cannot be
// opened for writing the original is untouched. A fault during the copy
// itself (after truncation) is past the commit point and is reported, but
// cannot restore the original.
func commit(scratch *os.File, path string) error {
	if _, err := scratch.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding scratch file: %w", err)
	}

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTargetUnwritable, err)
	}

	if _, err := io.Copy(dst, scratch); err != nil {
		dst.Close()
		return fmt.Errorf("%w: %v", ErrTargetUnwritable, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrTargetUnwritable, err)
	}
	return nil
}
