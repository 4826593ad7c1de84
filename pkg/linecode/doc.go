// Package linecode generates digital line-encoding waveforms from bit
// sequences. It is the core of NetCom: everything upstream prepares bits,
// everything downstream draws what this package produces.
//
// # Overview
//
// A line-encoding scheme maps each bit to one or more voltage segments
// within that bit's time slot. Five schemes are supported:
//
//   - [NRZL]: the level directly represents the bit value for the full bit
//   - [RZ]: a half-bit pulse (high for 1, low for 0) returning to zero
//   - [Manchester]: a mandatory mid-bit transition, upward for 1, downward for 0
//   - [AMI]: 0-bits sit at zero; 1-bits alternate between high and low
//   - [CMI]: 1-bits alternate between the high and zero rails; 0-bits rise mid-bit
//
// # Basic Usage
//
// Generate a waveform from a bit sequence and a scheme identifier:
//
//	bits, _ := bitstream.Encode("A")
//	w, err := linecode.Generate(bits, linecode.Manchester)
//
// [ParseScheme] validates user-supplied identifiers and fails fast on
// unknown names; there is no default scheme substitution.
//
// # Vertex Emission
//
// Every generate call produces one polyline. The first vertex is a Move
// (pen up) establishing the initial level. At each bit boundary or mid-bit
// transition, a level change inserts an explicit vertical edge drawn with
// the pen down, giving the stepped square-wave appearance; an unchanged
// level continues the line with no extra vertex. Depending on the scheme a
// bit contributes between one and four vertices.
//
// # Polarity
//
// AMI and CMI carry alternation state across bits: the polarity that the
// next 1-bit will use. The state is local to a single Generate call and
// flips after every 1-bit, persisting across intervening 0-bits. Initial
// polarity defaults to +1 for AMI (first 1-bit high) and -1 for CMI (first
// 1-bit on the zero rail, matching the worked example the tool teaches);
// [WithInitialPolarity] overrides either. The output is fully determined by
// (bits, scheme, initial polarity).
package linecode
