package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/EvapeGT/NetCom/pkg/errors"
)

func TestResolveInput(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		bits     string
		wantText string
		wantBits string
		wantErr  bool
	}{
		{"text only", "HI", "", "HI", "", false},
		{"bits only", "", "0101", "", "0101", false},
		{"both", "HI", "0101", "", "", true},
		{"neither", "", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, bits, err := resolveInput(tt.text, tt.bits, "", "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("error code = %v, want INVALID_INPUT", errors.GetCode(err))
				}
				return
			}
			if text != tt.wantText || bits != tt.wantBits {
				t.Errorf("resolveInput() = (%q, %q), want (%q, %q)", text, bits, tt.wantText, tt.wantBits)
			}
		})
	}
}

func TestResolveInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.txt")
	if err := os.WriteFile(path, []byte("HELLO\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, bits, err := resolveInput("", "", path, "")
	if err != nil {
		t.Fatalf("resolveInput() error: %v", err)
	}
	if text != "HELLO" {
		t.Errorf("text = %q, want %q (trailing newline stripped)", text, "HELLO")
	}
	if bits != "" {
		t.Errorf("bits = %q, want empty", bits)
	}
}

func TestResolveInputFromBitsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.bits")
	if err := os.WriteFile(path, []byte("01001000 01001001\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, bits, err := resolveInput("", "", "", path)
	if err != nil {
		t.Fatalf("resolveInput() error: %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
	if bits != "0100100001001001" {
		t.Errorf("bits = %q, want the document without separators", bits)
	}
}

func TestResolveInputFileConflictsWithText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "message.txt")
	if err := os.WriteFile(path, []byte("HELLO"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := resolveInput("HI", "", path, ""); err == nil {
		t.Error("expected error when both text and file are provided")
	}
}

func TestResolveInputMissingFile(t *testing.T) {
	_, _, err := resolveInput("", "", filepath.Join(t.TempDir(), "nope.txt"), "")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
