package pipeline

import (
	"testing"

	"github.com/EvapeGT/NetCom/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"text", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %q, want %q", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidateForEncode(t *testing.T) {
	// Missing text and bits
	opts := Options{Scheme: "nrz-l"}
	if err := opts.ValidateForEncode(); err == nil {
		t.Error("Missing text/bits should fail")
	}

	// Both text and bits
	opts = Options{Text: "A", Bits: "0100"}
	if err := opts.ValidateForEncode(); err == nil {
		t.Error("Both text and bits should fail")
	}

	// Valid with text
	opts = Options{Text: "A"}
	if err := opts.ValidateForEncode(); err != nil {
		t.Errorf("Valid text options should pass: %v", err)
	}

	// Valid with bits
	opts = Options{Bits: "0101"}
	if err := opts.ValidateForEncode(); err != nil {
		t.Errorf("Valid bits options should pass: %v", err)
	}

	// Logger default was set
	if opts.Logger == nil {
		t.Error("Logger default should be set")
	}
}

func TestOptionsValidateForGenerate(t *testing.T) {
	// Missing scheme
	opts := Options{Text: "A"}
	if err := opts.ValidateForGenerate(); err == nil {
		t.Error("Missing scheme should fail")
	}

	// Unknown scheme
	opts = Options{Text: "A", Scheme: "4b5b"}
	err := opts.ValidateForGenerate()
	if err == nil {
		t.Error("Unknown scheme should fail")
	}
	if !errors.Is(err, errors.ErrCodeUnsupportedScheme) {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeUnsupportedScheme)
	}

	// Invalid polarity
	opts = Options{Text: "A", Scheme: "ami", Polarity: 2}
	if err := opts.ValidateForGenerate(); err == nil {
		t.Error("Invalid polarity should fail")
	}

	// Zero polarity means scheme default
	opts = Options{Text: "A", Scheme: "ami"}
	if err := opts.ValidateForGenerate(); err != nil {
		t.Errorf("Zero polarity should pass: %v", err)
	}

	// Explicit polarity
	opts = Options{Text: "A", Scheme: "cmi", Polarity: 1}
	if err := opts.ValidateForGenerate(); err != nil {
		t.Errorf("Explicit polarity should pass: %v", err)
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	// Defaults fill in
	opts := Options{}
	if err := opts.ValidateForRender(); err != nil {
		t.Fatalf("Defaults should validate: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Theme != DefaultTheme {
		t.Errorf("Theme should be %s, got %s", DefaultTheme, opts.Theme)
	}
	if opts.Zoom != DefaultZoom {
		t.Errorf("Zoom should be %v, got %v", DefaultZoom, opts.Zoom)
	}
	if opts.CellsPerBit != DefaultCellsPerBit {
		t.Errorf("CellsPerBit should be %d, got %d", DefaultCellsPerBit, opts.CellsPerBit)
	}

	// Bad theme
	opts = Options{Theme: "neon"}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("Unknown theme should fail")
	}

	// Bad zoom
	opts = Options{Zoom: -4}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("Negative zoom should fail")
	}

	// Bad cells per bit
	opts = Options{CellsPerBit: 99}
	if err := opts.ValidateForRender(); err == nil {
		t.Error("Out-of-range cells per bit should fail")
	}
}

func TestOptionsIsAlternating(t *testing.T) {
	tests := []struct {
		scheme string
		want   bool
	}{
		{"nrz-l", false},
		{"rz", false},
		{"manchester", false},
		{"ami", true},
		{"cmi", true},
		{"bogus", false},
	}

	for _, tt := range tests {
		opts := Options{Scheme: tt.scheme}
		if got := opts.IsAlternating(); got != tt.want {
			t.Errorf("IsAlternating(%q) = %v, want %v", tt.scheme, got, tt.want)
		}
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{
		Text:   "hi",
		Scheme: "manchester",
	}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalFormats := len(opts.Formats)
	originalTheme := opts.Theme
	originalZoom := opts.Zoom

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
	if opts.Theme != originalTheme {
		t.Error("Theme changed on second call")
	}
	if opts.Zoom != originalZoom {
		t.Error("Zoom changed on second call")
	}
}

func TestArtifactKeyOptsVaryByFormat(t *testing.T) {
	opts := Options{Theme: "dark", Zoom: 60, CellsPerBit: 2}

	svgKey := opts.ArtifactKeyOpts("svg")
	pngKey := opts.ArtifactKeyOpts("png")
	if svgKey == pngKey {
		t.Error("different formats should produce different key opts")
	}
	if svgKey.Theme != "dark" || svgKey.Zoom != 60 || svgKey.Cells != 2 {
		t.Errorf("key opts should carry render options: %+v", svgKey)
	}
}
