// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInput(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "plain answer", in: "hello\n", want: "hello"},
		{name: "trims whitespace", in: "  spaced  \n", want: "spaced"},
		{name: "lowercase q quits", in: "q\n", wantErr: ErrQuit},
		{name: "uppercase q quits", in: "Q\n", wantErr: ErrQuit},
		{name: "eof quits", in: "", wantErr: ErrQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.in), &out)

			got, err := p.Input("Prompt")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Prompt: ") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestChoiceReprompts(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("x\nmaybe\nU\n"), &out)

	got, err := p.Choice("Case", "u", "l", "t", "s")
	if err != nil {
		t.Fatal(err)
	}
	if got != "u" {
		t.Errorf("got %q, want %q", got, "u")
	}
	if n := strings.Count(out.String(), "Invalid choice."); n != 2 {
		t.Errorf("invalid-choice messages = %d, want 2", n)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		p := New(strings.NewReader(tt.in), &out)
		got, err := p.Confirm("Update file")
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFilePath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("perfectly ordinary text\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	binary := filepath.Join(dir, "blob.bin")
	if err := os.WriteFile(binary, []byte{0x00, 0xff, 0x01, 0xfe}, 0o644); err != nil {
		t.Fatal(err)
	}

	// A missing file, then a binary file, then the good file declined once
	// and accepted on the second round.
	script := strings.Join([]string{
		filepath.Join(dir, "missing.txt"),
		binary,
		good, "n",
		good, "y",
	}, "\n") + "\n"

	var out bytes.Buffer
	p := New(strings.NewReader(script), &out)

	got, err := p.FilePath()
	if err != nil {
		t.Fatal(err)
	}
	if got != good {
		t.Errorf("got %q, want %q", got, good)
	}
	if !strings.Contains(out.String(), "Invalid file:") {
		t.Errorf("binary file not reported: %q", out.String())
	}
	if !strings.Contains(out.String(), "Error.") {
		t.Errorf("missing file not reported: %q", out.String())
	}
}

func TestFilePathQuit(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("q\n"), &out)

	if _, err := p.FilePath(); !errors.Is(err, ErrQuit) {
		t.Fatalf("err = %v, want ErrQuit", err)
	}
}
