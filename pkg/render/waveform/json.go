package waveform

import (
	"encoding/json"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// JSONOption customizes JSON rendering.
type JSONOption func(*jsonRenderer)

// WithJSONBits includes the source bit string in the document, grouped per
// character.
func WithJSONBits(bits bitstream.Sequence) JSONOption {
	return func(r *jsonRenderer) { r.bits = bits }
}

// WithJSONText includes the source text in the document.
func WithJSONText(text string) JSONOption {
	return func(r *jsonRenderer) { r.text = text }
}

type jsonRenderer struct {
	bits bitstream.Sequence
	text string
}

// jsonDocument is the serialized form of a waveform. Times are in
// fractional bit units, levels are rail names, and move marks the start of
// a new pen segment.
type jsonDocument struct {
	Scheme   string       `json:"scheme"`
	Text     string       `json:"text,omitempty"`
	Bits     string       `json:"bits,omitempty"`
	BitCount int          `json:"bit_count"`
	Duration float64      `json:"duration"`
	Vertices []jsonVertex `json:"vertices"`
}

type jsonVertex struct {
	T     float64 `json:"t"`
	Level string  `json:"level"`
	Move  bool    `json:"move,omitempty"`
}

// RenderJSON renders a waveform as an indented JSON document. The document
// always carries the scheme, bit count, duration, and the full vertex list;
// options add the source text and bit string for self-contained exports.
func RenderJSON(w *wave.Waveform, opts ...JSONOption) ([]byte, error) {
	r := &jsonRenderer{}
	for _, opt := range opts {
		opt(r)
	}

	doc := jsonDocument{
		Scheme:   w.Scheme,
		Text:     r.text,
		BitCount: w.BitCount,
		Duration: w.Duration(),
		Vertices: make([]jsonVertex, len(w.Vertices)),
	}
	if len(r.bits) > 0 {
		doc.Bits = r.bits.Grouped(bitstream.BitsPerChar)
	}
	for i, v := range w.Vertices {
		doc.Vertices[i] = jsonVertex{T: v.T, Level: v.Level.String(), Move: v.Move}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to marshal waveform")
	}
	return data, nil
}

// DecodeJSON parses a document produced by [RenderJSON] back into a
// waveform. The vertex list is validated so a hand-edited document cannot
// smuggle in unknown levels or out-of-order times.
func DecodeJSON(data []byte) (*wave.Waveform, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse waveform document")
	}

	w := &wave.Waveform{
		Scheme:   doc.Scheme,
		BitCount: doc.BitCount,
		Vertices: make([]wave.Vertex, len(doc.Vertices)),
	}
	for i, v := range doc.Vertices {
		level, err := parseLevel(v.Level)
		if err != nil {
			return nil, err
		}
		w.Vertices[i] = wave.Vertex{T: v.T, Level: level, Move: v.Move}
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

func parseLevel(name string) (wave.Level, error) {
	switch name {
	case "high":
		return wave.High, nil
	case "zero":
		return wave.Zero, nil
	case "low":
		return wave.Low, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidFormat, "unknown voltage level %q", name)
}
