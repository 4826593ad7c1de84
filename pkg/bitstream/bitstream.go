package bitstream

import (
	"strings"

	"github.com/EvapeGT/NetCom/pkg/errors"
)

// Bit is a single binary digit. Only the values [Zero] and [One] are valid;
// anything else fails [Sequence.Validate].
type Bit uint8

const (
	// Zero is the binary digit 0.
	Zero Bit = 0
	// One is the binary digit 1.
	One Bit = 1
)

// BitsPerChar is the fixed number of bits contributed by each input
// character. The eight-bit width is load-bearing for every downstream
// consumer: waveform positions, bit labels, and the round-trip law all
// assume it.
const BitsPerChar = 8

// Sequence is an ordered bit sequence. Index 0 is the earliest bit in time.
// Sequences are treated as immutable once produced; all methods are
// read-only.
type Sequence []Bit

// Encode converts text to its fixed-width binary representation: eight bits
// per character, most-significant bit first, concatenated in input order.
//
// Returns an INVALID_INPUT error for empty text and an
// UNSUPPORTED_CODE_POINT error naming the offending character and its
// position for any code point above 255. No partial sequence is ever
// returned.
func Encode(text string) (Sequence, error) {
	if text == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "text cannot be empty")
	}

	bits := make(Sequence, 0, len(text)*BitsPerChar)
	pos := 0
	for _, r := range text {
		if r > 0xFF {
			return nil, errors.New(errors.ErrCodeUnsupportedCodePoint,
				"character %q at position %d has code point %d (max 255)", r, pos, r)
		}
		for shift := BitsPerChar - 1; shift >= 0; shift-- {
			bits = append(bits, Bit((r>>uint(shift))&1))
		}
		pos++
	}
	return bits, nil
}

// Decode reverses [Encode], grouping the sequence into eight-bit characters.
//
// Returns an INVALID_INPUT error when the length is not a multiple of eight
// or when the sequence contains a value outside {0, 1}.
func Decode(bits Sequence) (string, error) {
	if err := bits.Validate(); err != nil {
		return "", err
	}
	if len(bits)%BitsPerChar != 0 {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"bit count %d is not a multiple of %d", len(bits), BitsPerChar)
	}

	var b strings.Builder
	b.Grow(len(bits) / BitsPerChar)
	for i := 0; i < len(bits); i += BitsPerChar {
		var code rune
		for _, bit := range bits[i : i+BitsPerChar] {
			code = code<<1 | rune(bit)
		}
		b.WriteRune(code)
	}
	return b.String(), nil
}

// Parse converts a '0'/'1' string into a [Sequence]. Space, tab, and
// newline characters are accepted as separators and ignored; any other
// character is an INVALID_INPUT error, as is an input with no bits at all.
func Parse(s string) (Sequence, error) {
	var bits Sequence
	for _, r := range s {
		switch r {
		case '0':
			bits = append(bits, Zero)
		case '1':
			bits = append(bits, One)
		case ' ', '\t', '\n', '\r':
			// separator
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"bit string contains invalid character %q", r)
		}
	}
	if len(bits) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "bit string cannot be empty")
	}
	return bits, nil
}

// Validate reports whether the sequence is usable for waveform generation:
// non-empty with every value in {0, 1}. Out-of-range values should be
// unreachable for sequences produced by [Encode] or [Parse]; the check
// guards sequences constructed by hand.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "bit sequence cannot be empty")
	}
	for i, b := range s {
		if b > One {
			return errors.New(errors.ErrCodeInvalidInput,
				"bit at index %d has value %d (must be 0 or 1)", i, b)
		}
	}
	return nil
}

// String returns the raw '0'/'1' representation with no separators. This is
// the clipboard and plain-text export format.
func (s Sequence) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, bit := range s {
		b.WriteByte('0' + byte(bit))
	}
	return b.String()
}

// Grouped returns the '0'/'1' representation split into space-separated
// groups of n bits, the display format used above rendered waveforms.
// A group size below 1 falls back to [Sequence.String].
func (s Sequence) Grouped(n int) string {
	if n < 1 {
		return s.String()
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	for i, bit := range s {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('0' + byte(bit))
	}
	return b.String()
}
