// Package bitstream converts text to and from the ordered bit sequences
// that feed waveform generation.
//
// # Overview
//
// NetCom visualizes how text looks on a wire. The first step is fixed-width
// binary conversion: every input character contributes exactly eight bits,
// most-significant bit first, concatenated in input order. This package owns
// that conversion and the textual '0'/'1' formats used for display, clipboard
// exchange, and file input.
//
// # Basic Usage
//
// Convert text with [Encode] and recover it with [Decode]:
//
//	bits, err := bitstream.Encode("A")
//	// bits.String() == "01000001"
//
// [Parse] accepts '0'/'1' strings (whitespace separators allowed) for users
// who bring their own bit patterns instead of text:
//
//	bits, err := bitstream.Parse("0100 0001")
//
// # Bit Order
//
// Index 0 of a [Sequence] is the earliest bit in time, which is also the
// most significant bit of the first character. The round-trip law holds for
// every valid input: Decode(Encode(text)) == text.
//
// # Code Point Range
//
// The fixed eight-bit width is the didactic point of the tool, so only code
// points in [0, 255] are representable. [Encode] rejects anything wider with
// an UNSUPPORTED_CODE_POINT error rather than truncating silently.
package bitstream
