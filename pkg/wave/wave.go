package wave

import (
	"github.com/EvapeGT/NetCom/pkg/errors"
)

// Level is a symbolic voltage level. The concrete numeric or pixel mapping
// is a rendering concern; the core only distinguishes the three rails.
type Level int8

const (
	// Low is the negative rail (-V).
	Low Level = -1
	// Zero is the neutral rail (0V).
	Zero Level = 0
	// High is the positive rail (+V).
	High Level = 1
)

// String returns the lowercase rail name used in JSON output and logs.
func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case Zero:
		return "zero"
	case High:
		return "high"
	default:
		return "invalid"
	}
}

// Valid reports whether l is one of the three defined rails.
func (l Level) Valid() bool {
	return l == Low || l == Zero || l == High
}

// Vertex is one point of a waveform polyline.
type Vertex struct {
	T     float64 // Position in bit-width units (0.5 = middle of first bit)
	Level Level   // Rail at this point
	Move  bool    // Begin a new subpath here instead of drawing from the previous vertex
}

// Waveform is the ordered vertex sequence produced by one generate call.
// It records the scheme identifier and bit count it was generated from so
// renderers and exporters can derive labels and file names without extra
// state.
//
// Waveforms are created fresh on every generation and never mutated after;
// all methods are read-only.
type Waveform struct {
	Scheme   string   // Scheme identifier that produced this waveform
	BitCount int      // Number of bits the waveform spans
	Vertices []Vertex // Polyline vertices, earliest first
}

// Duration returns the waveform's extent in bit-width units.
func (w *Waveform) Duration() float64 {
	return float64(w.BitCount)
}

// LevelAt returns the level in effect at position t: the level of the
// latest vertex whose position is at or before t. Where a vertical
// transition places two vertices at the same position, the post-transition
// level wins. Positions before the first vertex report the first vertex's
// level.
func (w *Waveform) LevelAt(t float64) Level {
	if len(w.Vertices) == 0 {
		return Zero
	}
	level := w.Vertices[0].Level
	for _, v := range w.Vertices {
		if v.T > t {
			break
		}
		level = v.Level
	}
	return level
}

// Segments splits the polyline into continuous pen-down runs: each Move
// vertex opens a new segment containing it and every following vertex up to
// the next Move. Renderers emit one subpath per segment.
func (w *Waveform) Segments() [][]Vertex {
	var segments [][]Vertex
	for _, v := range w.Vertices {
		if v.Move || len(segments) == 0 {
			segments = append(segments, []Vertex{v})
			continue
		}
		last := len(segments) - 1
		segments[last] = append(segments[last], v)
	}
	return segments
}

// Validate checks the waveform invariants: at least one vertex, a Move
// vertex first, non-decreasing positions within [0, BitCount], and defined
// levels throughout. Generated waveforms always pass; this guards imported
// ones.
func (w *Waveform) Validate() error {
	if len(w.Vertices) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "waveform has no vertices")
	}
	if !w.Vertices[0].Move {
		return errors.New(errors.ErrCodeInvalidInput, "first vertex must start a segment")
	}

	prev := 0.0
	for i, v := range w.Vertices {
		if !v.Level.Valid() {
			return errors.New(errors.ErrCodeInvalidInput,
				"vertex %d has invalid level %d", i, v.Level)
		}
		if v.T < prev {
			return errors.New(errors.ErrCodeInvalidInput,
				"vertex %d at position %g precedes vertex %d at %g", i, v.T, i-1, prev)
		}
		if v.T < 0 || v.T > float64(w.BitCount) {
			return errors.New(errors.ErrCodeInvalidInput,
				"vertex %d at position %g is outside [0, %d]", i, v.T, w.BitCount)
		}
		prev = v.T
	}
	return nil
}
