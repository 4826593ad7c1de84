package linecode

import (
	"strings"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// Scheme identifies one of the supported line-encoding schemes.
// The zero value is not a valid scheme; use the constants or [ParseScheme].
type Scheme string

// The five supported schemes, in canonical display order.
const (
	NRZL       Scheme = "nrz-l"
	RZ         Scheme = "rz"
	Manchester Scheme = "manchester"
	AMI        Scheme = "ami"
	CMI        Scheme = "cmi"
)

// Default initial polarities for the alternating schemes. AMI starts
// positive so the first 1-bit renders high; CMI starts negative so the
// first 1-bit renders on the zero rail.
const (
	DefaultAMIPolarity = 1
	DefaultCMIPolarity = -1
)

// schemes is the canonical ordering used by [Schemes] and the UI surfaces.
var schemes = []Scheme{NRZL, RZ, Manchester, AMI, CMI}

// Schemes returns all supported schemes in canonical display order.
// The returned slice is a copy and safe to modify.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// ParseScheme validates a scheme identifier. Matching is case-insensitive
// and accepts "nrzl" as a hyphen-free alias for "nrz-l" (convenient in
// URLs and shell flags). Unknown identifiers return an UNSUPPORTED_SCHEME
// error; there is no default substitution.
func ParseScheme(s string) (Scheme, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "nrzl" {
		normalized = string(NRZL)
	}
	for _, scheme := range schemes {
		if normalized == string(scheme) {
			return scheme, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupportedScheme,
		"unsupported scheme %q (supported: %s)", s, supportedList())
}

// supportedList renders the scheme identifiers for error messages.
func supportedList() string {
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Valid reports whether s is one of the supported schemes.
func (s Scheme) Valid() bool {
	for _, scheme := range schemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// Name returns the display name shown in UIs and diagram titles.
func (s Scheme) Name() string {
	switch s {
	case NRZL:
		return "NRZ-L"
	case RZ:
		return "RZ"
	case Manchester:
		return "Manchester"
	case AMI:
		return "Bipolar AMI"
	case CMI:
		return "CMI"
	default:
		return string(s)
	}
}

// Description returns the one-line encoding rule shown next to rendered
// waveforms.
func (s Scheme) Description() string {
	switch s {
	case NRZL:
		return "High for 1, zero for 0; the level holds for the full bit."
	case RZ:
		return "High for 1 and low for 0 during the first half-bit, returning to zero for the second half."
	case Manchester:
		return "A transition in the middle of every bit: upward for 1, downward for 0."
	case AMI:
		return "0-bits stay at zero; 1-bits alternate between high and low."
	case CMI:
		return "1-bits alternate between the high and zero rails; 0-bits rise from zero to high mid-bit."
	default:
		return ""
	}
}

// Alternating reports whether the scheme carries polarity state across
// bits. Only AMI and CMI do; [WithInitialPolarity] has no effect on the
// others.
func (s Scheme) Alternating() bool {
	return s == AMI || s == CMI
}

// genConfig collects per-call generation options.
type genConfig struct {
	polarity *int // nil selects the scheme's default
}

// Option configures a single Generate call.
type Option func(*genConfig)

// WithInitialPolarity overrides the initial polarity for the alternating
// schemes (AMI, CMI). The value must be +1 or -1. Schemes without
// alternation state ignore it.
func WithInitialPolarity(p int) Option {
	return func(c *genConfig) {
		c.polarity = &p
	}
}

// encoder is the per-scheme generation strategy. Implementations walk the
// bit sequence in order and emit flat segments through the pen, which owns
// the boundary-edge bookkeeping.
type encoder interface {
	encode(bits bitstream.Sequence, p *pen)
}

// newEncoder selects the strategy for a scheme, resolving the initial
// polarity for the alternating ones.
func newEncoder(scheme Scheme, cfg genConfig) (encoder, error) {
	polarity := func(def int) int {
		if cfg.polarity != nil {
			return *cfg.polarity
		}
		return def
	}

	switch scheme {
	case NRZL:
		return nrzlEncoder{}, nil
	case RZ:
		return rzEncoder{}, nil
	case Manchester:
		return manchesterEncoder{}, nil
	case AMI:
		return &amiEncoder{polarity: polarity(DefaultAMIPolarity)}, nil
	case CMI:
		return &cmiEncoder{polarity: polarity(DefaultCMIPolarity)}, nil
	default:
		return nil, errors.New(errors.ErrCodeUnsupportedScheme,
			"unsupported scheme %q (supported: %s)", scheme, supportedList())
	}
}

// Generate converts a bit sequence into a waveform using the given scheme.
// It is a pure function of its inputs: no global state, identical inputs
// produce identical vertex sequences, and calls for different schemes may
// run in parallel.
//
// Returns an INVALID_INPUT error for an empty or ill-formed bit sequence,
// an UNSUPPORTED_SCHEME error for an unknown scheme, and an
// INVALID_POLARITY error when [WithInitialPolarity] is given a value other
// than +1 or -1. On error no partial waveform is returned.
func Generate(bits bitstream.Sequence, scheme Scheme, opts ...Option) (*wave.Waveform, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}

	var cfg genConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.polarity != nil {
		if err := errors.ValidatePolarity(*cfg.polarity); err != nil {
			return nil, err
		}
	}

	enc, err := newEncoder(scheme, cfg)
	if err != nil {
		return nil, err
	}

	p := newPen(len(bits))
	enc.encode(bits, p)

	return &wave.Waveform{
		Scheme:   string(scheme),
		BitCount: len(bits),
		Vertices: p.vertices,
	}, nil
}

// pen accumulates polyline vertices. It owns the level-continuity rule at
// segment boundaries: the first segment opens with a Move vertex, and a
// segment starting at a different level than the previous one ended gets an
// explicit vertical edge drawn with the pen down. An unchanged level
// continues the line with no extra vertex.
type pen struct {
	vertices []wave.Vertex
	started  bool
	last     wave.Level
}

// newPen sizes the vertex buffer for the worst case of four vertices per
// bit plus the opening Move.
func newPen(bitCount int) *pen {
	return &pen{vertices: make([]wave.Vertex, 0, 4*bitCount+1)}
}

// flat appends a horizontal segment from t0 to t1 at the given level.
func (p *pen) flat(t0, t1 float64, level wave.Level) {
	switch {
	case !p.started:
		p.vertices = append(p.vertices, wave.Vertex{T: t0, Level: level, Move: true})
		p.started = true
	case p.last != level:
		p.vertices = append(p.vertices, wave.Vertex{T: t0, Level: level})
	}
	p.vertices = append(p.vertices, wave.Vertex{T: t1, Level: level})
	p.last = level
}
