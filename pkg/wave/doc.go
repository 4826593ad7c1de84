// Package wave defines the waveform vertex model produced by line-encoding
// schemes and consumed by every renderer.
//
// # Overview
//
// A waveform is an ordered polyline of (time, voltage) vertices. Time is
// measured in bit-width units (one unit per bit, 0.5 marks a mid-bit
// transition), voltage is one of three symbolic rails, and each vertex
// carries a pen flag: a Move vertex starts a new subpath, a non-Move vertex
// draws a straight edge from its predecessor. Renderers own everything
// beyond that: pixel scaling, rail y-coordinates, colors, grids, and labels.
//
// # Invariants
//
// A well-formed [Waveform] is non-empty, starts with a Move vertex, has
// non-decreasing T values bounded by the bit count, and uses only the three
// defined levels. [Waveform.Validate] checks all of this; sequences produced
// by the linecode package always pass.
//
// The model is deliberately inert. Nothing here mutates after generation,
// so a single waveform can be handed to multiple renderers concurrently.
package wave
