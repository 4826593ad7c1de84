// Package io provides JSON import and export for waveforms.
//
// # Overview
//
// This package enables serialization of generated waveforms to and from the
// json render format. The format is designed for:
//
//   - Inspection of exact vertex positions without reading pixels
//   - Integration with external plotting tools that consume vertex lists
//   - Caching of generated waveforms for faster re-rendering
//   - Round-trip preservation: export, edit, and re-import identically
//
// # JSON Format
//
// A document carries the scheme, the bit count, the total duration in bit
// units, and the vertex list:
//
//	{
//	  "scheme": "manchester",
//	  "bits": "01000001",
//	  "bit_count": 8,
//	  "duration": 8,
//	  "vertices": [
//	    {"t": 0, "level": "high", "move": true},
//	    {"t": 0.5, "level": "high"},
//	    {"t": 0.5, "level": "low"}
//	  ]
//	}
//
// Times are fractional bit units, levels are the rail names "high", "zero"
// and "low", and "move" marks the start of a new pen segment. The optional
// "text" and "bits" fields record the source input so a document is
// self-contained.
//
// # Import
//
// Use [ImportJSON] to read a waveform from a file path, or [ReadJSON] to
// read from any io.Reader:
//
//	wf, err := io.ImportJSON("wave.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the document: every vertex level must be a known
// rail and vertex times must not decrease. Decode failures carry the
// INVALID_FORMAT error code; constraint violations carry INVALID_INPUT.
//
// # Export
//
// Use [ExportJSON] to write a waveform to a file, or [WriteJSON] to write
// to any io.Writer:
//
//	err := io.ExportJSON(wf, bits, "A", "wave.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Input Text
//
// [ReadText] and [LoadText] read the plain text input for the encoding
// pipeline, trimming a single trailing newline so piped shell output
// encodes without a stray 0x0A character.
//
// # Bit Documents
//
// [ReadBits] and [LoadBits] read '0'/'1' bit documents, the plain-text
// format the encode command writes with --output. Whitespace separators
// (grouping spaces, trailing newline) are ignored:
//
//	bits, err := io.LoadBits("message.bits")
package io
