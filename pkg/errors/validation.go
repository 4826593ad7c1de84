package errors

import (
	"strings"
)

// Input size limits shared by the CLI and the hosted API. The tool renders
// eight bits per character, so the text cap bounds every downstream artifact
// (vertex count, SVG path length, PNG width).
const (
	// MaxTextLength is the maximum number of input characters accepted.
	MaxTextLength = 1024

	// MaxBitLength is the maximum number of bits accepted as direct input.
	MaxBitLength = 8 * MaxTextLength
)

// ValidateText validates user-entered text before encoding.
// Code-point range checking happens during encoding; this guards the
// surface-level constraints shared by all entry points.
func ValidateText(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "text cannot be empty")
	}

	if len([]rune(text)) > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (max %d characters)", MaxTextLength)
	}

	if strings.ContainsRune(text, '\x00') {
		return New(ErrCodeInvalidInput, "text contains null bytes")
	}

	return nil
}

// ValidateBitString validates a '0'/'1' string before parsing.
// Whitespace separators are allowed; any other character is rejected.
func ValidateBitString(s string) error {
	if strings.TrimSpace(s) == "" {
		return New(ErrCodeInvalidInput, "bit string cannot be empty")
	}

	bits := 0
	for _, r := range s {
		switch r {
		case '0', '1':
			bits++
		case ' ', '\t', '\n', '\r':
			// separator
		default:
			return New(ErrCodeInvalidInput, "bit string contains invalid character %q", r)
		}
	}

	if bits > MaxBitLength {
		return New(ErrCodeInvalidInput, "bit string too long (max %d bits)", MaxBitLength)
	}

	return nil
}

// ValidatePolarity validates an initial polarity value for the alternating
// schemes. Only +1 and -1 are meaningful.
func ValidatePolarity(p int) error {
	if p != 1 && p != -1 {
		return New(ErrCodeInvalidPolarity, "polarity must be +1 or -1, got %d", p)
	}
	return nil
}

// ValidateZoom validates a zoom factor (pixels per bit-width unit).
func ValidateZoom(zoom float64) error {
	if zoom <= 0 {
		return New(ErrCodeInvalidInput, "zoom must be positive, got %g", zoom)
	}
	if zoom > 400 {
		return New(ErrCodeInvalidInput, "zoom too large (max 400), got %g", zoom)
	}
	return nil
}

// ValidateGroupSize validates the group size used when formatting bit
// strings for display.
func ValidateGroupSize(n int) error {
	if n < 1 || n > 64 {
		return New(ErrCodeInvalidInput, "group size must be between 1 and 64, got %d", n)
	}
	return nil
}
