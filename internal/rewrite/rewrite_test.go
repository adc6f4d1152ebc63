// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rewrite

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/textcase/pkg/types"
)

// writeTemp creates a file with the given content in a fresh temp dir.
func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name      string
		mode      types.CaseMode
		content   string
		want      string
		wantLines int
	}{
		{
			name:      "upper",
			mode:      types.CaseUpper,
			content:   "hello world\nsecond Line\n",
			want:      "HELLO WORLD\nSECOND LINE\n",
			wantLines: 2,
		},
		{
			name:      "lower",
			mode:      types.CaseLower,
			content:   "Hello WORLD\n",
			want:      "hello world\n",
			wantLines: 1,
		},
		{
			name:      "title",
			mode:      types.CaseTitle,
			content:   "the quick fox\n",
			want:      "The Quick Fox\n",
			wantLines: 1,
		},
		{
			name:      "sentence threads state across lines",
			mode:      types.CaseSentence,
			content:   "hello world\nmore text.\nand more.\n",
			want:      "Hello world\nMore text.\nand more.\n",
			wantLines: 3,
		},
		{
			name:      "last line without newline preserved for stateless modes",
			mode:      types.CaseUpper,
			content:   "first\nsecond",
			want:      "FIRST\nSECOND",
			wantLines: 2,
		},
		{
			name:      "empty file",
			mode:      types.CaseUpper,
			content:   "",
			want:      "",
			wantLines: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.content)

			result, err := ConvertFile(path, tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			if got := readBack(t, path); got != tt.want {
				t.Errorf("file content = %q, want %q", got, tt.want)
			}
			if result.Lines != tt.wantLines {
				t.Errorf("lines = %d, want %d", result.Lines, tt.wantLines)
			}
			if result.Bytes != int64(len(tt.want)) {
				t.Errorf("bytes = %d, want %d", result.Bytes, len(tt.want))
			}
		})
	}
}

// TestConvertFileIdempotent verifies convert(convert(F)) == convert(F) for
// the stateless modes.
func TestConvertFileIdempotent(t *testing.T) {
	const content = "The QUICK brown fox. jumps OVER the lazy dog\nSECOND line here\n"
	for _, mode := range []types.CaseMode{types.CaseUpper, types.CaseLower, types.CaseTitle} {
		t.Run(string(mode), func(t *testing.T) {
			path := writeTemp(t, content)

			if _, err := ConvertFile(path, mode); err != nil {
				t.Fatal(err)
			}
			once := readBack(t, path)
			if _, err := ConvertFile(path, mode); err != nil {
				t.Fatal(err)
			}
			if twice := readBack(t, path); twice != once {
				t.Errorf("not idempotent: %q != %q", twice, once)
			}
		})
	}
}

func TestConvertFileInvalidMode(t *testing.T) {
	const content = "untouched\n"
	path := writeTemp(t, content)

	_, err := ConvertFile(path, types.CaseMode("camel"))
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("err = %v, want ErrInvalidMode", err)
	}
	if got := readBack(t, path); got != content {
		t.Errorf("file modified on invalid mode: %q", got)
	}
}

func TestConvertFileMissingSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	_, err := ConvertFile(path, types.CaseUpper)
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("err = %v, want ErrSourceUnreadable", err)
	}
}

func TestConvertFileRejectsInvalidUTF8(t *testing.T) {
	content := "fine line\n" + string([]byte{0xff, 0xfe, 0xfd}) + "\n"
	path := writeTemp(t, content)

	_, err := ConvertFile(path, types.CaseUpper)
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("err = %v, want ErrSourceUnreadable", err)
	}
	if got := readBack(t, path); got != content {
		t.Errorf("file modified on decode failure: %q", got)
	}
}

func TestConvertFileUnwritableTarget(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	const content = "cannot touch this\n"
	path := writeTemp(t, content)
	if err := os.Chmod(path, 0o444); err != nil {
		t.Fatal(err)
	}

	_, err := ConvertFile(path, types.CaseUpper)
	if !errors.Is(err, ErrTargetUnwritable) {
		t.Fatalf("err = %v, want ErrTargetUnwritable", err)
	}
	if got := readBack(t, path); got != content {
		t.Errorf("file modified on unwritable target: %q", got)
	}
}

// TestConvertFileLarge streams a file well past any internal buffer size
// through the sentence transform and checks line-count bookkeeping.
func TestConvertFileLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large-file test in short mode")
	}

	const lines = 200000
	var b strings.Builder
	for i := 0; i < lines; i++ {
		b.WriteString("some mixed CASE text that goes on for a while. and then some\n")
	}
	path := writeTemp(t, b.String())

	result, err := ConvertFile(path, types.CaseSentence)
	if err != nil {
		t.Fatal(err)
	}
	if result.Lines != lines {
		t.Errorf("lines = %d, want %d", result.Lines, lines)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	head := make([]byte, 64)
	if _, err := f.Read(head); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(head), "Some mixed case text that goes on for a while. And then some\n") {
		t.Errorf("unexpected head: %q", string(head))
	}
}
