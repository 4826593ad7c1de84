package linecode

import (
	"testing"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// mustBits parses a '0'/'1' string or fails the test.
func mustBits(t *testing.T, s string) bitstream.Sequence {
	t.Helper()
	bits, err := bitstream.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", s, err)
	}
	return bits
}

// bitLevels samples the level in effect during each bit's first and second
// half (at quarter and three-quarter positions).
func bitLevels(w *wave.Waveform) (first, second []wave.Level) {
	for i := 0; i < w.BitCount; i++ {
		first = append(first, w.LevelAt(float64(i)+0.25))
		second = append(second, w.LevelAt(float64(i)+0.75))
	}
	return first, second
}

// moveCount counts pen-up vertices.
func moveCount(w *wave.Waveform) int {
	n := 0
	for _, v := range w.Vertices {
		if v.Move {
			n++
		}
	}
	return n
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Scheme
		wantErr bool
	}{
		{"canonical nrz-l", "nrz-l", NRZL, false},
		{"alias nrzl", "nrzl", NRZL, false},
		{"uppercase", "NRZ-L", NRZL, false},
		{"mixed case manchester", "Manchester", Manchester, false},
		{"rz", "rz", RZ, false},
		{"ami", "ami", AMI, false},
		{"cmi", "cmi", CMI, false},
		{"surrounding spaces", "  cmi  ", CMI, false},

		{"empty", "", "", true},
		{"unknown", "4b5b", "", true},
		{"close but wrong", "nrz-i", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheme(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScheme(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeUnsupportedScheme) {
					t.Errorf("ParseScheme(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeUnsupportedScheme)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseScheme(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSchemes(t *testing.T) {
	got := Schemes()
	want := []Scheme{NRZL, RZ, Manchester, AMI, CMI}
	if len(got) != len(want) {
		t.Fatalf("Schemes() count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Schemes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Every scheme carries display metadata.
	for _, s := range got {
		if s.Name() == "" {
			t.Errorf("%v.Name() is empty", s)
		}
		if s.Description() == "" {
			t.Errorf("%v.Description() is empty", s)
		}
	}
}

func TestSchemeAlternating(t *testing.T) {
	for _, s := range []Scheme{AMI, CMI} {
		if !s.Alternating() {
			t.Errorf("%v.Alternating() = false, want true", s)
		}
	}
	for _, s := range []Scheme{NRZL, RZ, Manchester} {
		if s.Alternating() {
			t.Errorf("%v.Alternating() = true, want false", s)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	valid := mustBits(t, "01")

	tests := []struct {
		name     string
		bits     bitstream.Sequence
		scheme   Scheme
		opts     []Option
		wantCode errors.Code
	}{
		{
			name:     "empty bits",
			bits:     bitstream.Sequence{},
			scheme:   NRZL,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "nil bits",
			bits:     nil,
			scheme:   Manchester,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "bit value out of range",
			bits:     bitstream.Sequence{0, 1, 2},
			scheme:   NRZL,
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "unsupported scheme",
			bits:     valid,
			scheme:   Scheme("4b5b"),
			wantCode: errors.ErrCodeUnsupportedScheme,
		},
		{
			name:     "empty scheme",
			bits:     valid,
			scheme:   Scheme(""),
			wantCode: errors.ErrCodeUnsupportedScheme,
		},
		{
			name:     "invalid polarity",
			bits:     valid,
			scheme:   AMI,
			opts:     []Option{WithInitialPolarity(0)},
			wantCode: errors.ErrCodeInvalidPolarity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Generate(tt.bits, tt.scheme, tt.opts...)
			if err == nil {
				t.Fatalf("Generate() error = nil, want code %v", tt.wantCode)
			}
			if w != nil {
				t.Errorf("Generate() waveform = %v, want nil on error", w)
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Generate() code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestGenerateNRZL(t *testing.T) {
	t.Run("letter A levels", func(t *testing.T) {
		bits, err := bitstream.Encode("A")
		if err != nil {
			t.Fatalf("Encode error = %v", err)
		}

		w, err := Generate(bits, NRZL)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		// 01000001: zero except bits 1 and 7
		want := []wave.Level{
			wave.Zero, wave.High, wave.Zero, wave.Zero,
			wave.Zero, wave.Zero, wave.Zero, wave.High,
		}
		first, second := bitLevels(w)
		for i, level := range want {
			if first[i] != level || second[i] != level {
				t.Errorf("bit %d level = %v/%v, want %v for both halves", i, first[i], second[i], level)
			}
		}

		// One continuous polyline: the pen only lifts at the start.
		if got := moveCount(w); got != 1 {
			t.Errorf("move count = %d, want 1", got)
		}
		if !w.Vertices[0].Move {
			t.Error("first vertex Move = false, want true")
		}
	})

	t.Run("exact vertices for 01", func(t *testing.T) {
		w, err := Generate(mustBits(t, "01"), NRZL)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		want := []wave.Vertex{
			{T: 0, Level: wave.Zero, Move: true},
			{T: 1, Level: wave.Zero},
			{T: 1, Level: wave.High},
			{T: 2, Level: wave.High},
		}
		assertVertices(t, w, want)
	})

	t.Run("no transition between equal bits", func(t *testing.T) {
		w, err := Generate(mustBits(t, "111"), NRZL)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		// Flat line: opening move plus one end vertex per bit.
		want := []wave.Vertex{
			{T: 0, Level: wave.High, Move: true},
			{T: 1, Level: wave.High},
			{T: 2, Level: wave.High},
			{T: 3, Level: wave.High},
		}
		assertVertices(t, w, want)
	})
}

func TestGenerateRZ(t *testing.T) {
	t.Run("exact vertices for 10", func(t *testing.T) {
		w, err := Generate(mustBits(t, "10"), RZ)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		want := []wave.Vertex{
			{T: 0, Level: wave.High, Move: true},
			{T: 0.5, Level: wave.High},
			{T: 0.5, Level: wave.Zero},
			{T: 1, Level: wave.Zero},
			{T: 1, Level: wave.Low},
			{T: 1.5, Level: wave.Low},
			{T: 1.5, Level: wave.Zero},
			{T: 2, Level: wave.Zero},
		}
		assertVertices(t, w, want)
	})

	t.Run("every bit ends at zero", func(t *testing.T) {
		w, err := Generate(mustBits(t, "110101"), RZ)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		_, second := bitLevels(w)
		for i, level := range second {
			if level != wave.Zero {
				t.Errorf("bit %d second half = %v, want %v", i, level, wave.Zero)
			}
		}
	})

	t.Run("first half follows bit value", func(t *testing.T) {
		w, err := Generate(mustBits(t, "10"), RZ)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		first, _ := bitLevels(w)
		if first[0] != wave.High {
			t.Errorf("1-bit first half = %v, want %v", first[0], wave.High)
		}
		if first[1] != wave.Low {
			t.Errorf("0-bit first half = %v, want %v", first[1], wave.Low)
		}
	})
}

func TestGenerateManchester(t *testing.T) {
	t.Run("mid-bit transition every bit", func(t *testing.T) {
		w, err := Generate(mustBits(t, "1100101"), Manchester)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		bits := mustBits(t, "1100101")
		first, second := bitLevels(w)
		for i, b := range bits {
			if b == bitstream.One {
				// upward: low then high
				if first[i] != wave.Low || second[i] != wave.High {
					t.Errorf("1-bit %d halves = %v/%v, want low/high", i, first[i], second[i])
				}
			} else {
				// downward: high then low
				if first[i] != wave.High || second[i] != wave.Low {
					t.Errorf("0-bit %d halves = %v/%v, want high/low", i, first[i], second[i])
				}
			}
		}
	})

	t.Run("exact vertices for single 1", func(t *testing.T) {
		w, err := Generate(mustBits(t, "1"), Manchester)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		want := []wave.Vertex{
			{T: 0, Level: wave.Low, Move: true},
			{T: 0.5, Level: wave.Low},
			{T: 0.5, Level: wave.High},
			{T: 1, Level: wave.High},
		}
		assertVertices(t, w, want)
	})
}

func TestGenerateAMI(t *testing.T) {
	t.Run("alternation across 1-bits", func(t *testing.T) {
		// 1-bits alternate polarity; 0-bits sit at zero and are skipped
		// for polarity purposes.
		w, err := Generate(bitstream.Sequence{0, 1, 0, 1, 1, 0, 1}, AMI)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		want := []wave.Level{
			wave.Zero, wave.High, wave.Zero, wave.Low,
			wave.High, wave.Zero, wave.Low,
		}
		first, second := bitLevels(w)
		for i, level := range want {
			if first[i] != level || second[i] != level {
				t.Errorf("bit %d level = %v/%v, want %v for both halves", i, first[i], second[i], level)
			}
		}
	})

	t.Run("initial polarity override", func(t *testing.T) {
		w, err := Generate(mustBits(t, "11"), AMI, WithInitialPolarity(-1))
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		first, _ := bitLevels(w)
		if first[0] != wave.Low {
			t.Errorf("first 1-bit = %v, want %v", first[0], wave.Low)
		}
		if first[1] != wave.High {
			t.Errorf("second 1-bit = %v, want %v", first[1], wave.High)
		}
	})

	t.Run("all zeros stay flat", func(t *testing.T) {
		w, err := Generate(mustBits(t, "0000"), AMI)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		want := []wave.Vertex{
			{T: 0, Level: wave.Zero, Move: true},
			{T: 1, Level: wave.Zero},
			{T: 2, Level: wave.Zero},
			{T: 3, Level: wave.Zero},
			{T: 4, Level: wave.Zero},
		}
		assertVertices(t, w, want)
	})
}

func TestGenerateCMI(t *testing.T) {
	t.Run("default polarity scenario", func(t *testing.T) {
		// Initial polarity -1: the first 1-bit renders on the zero rail.
		w, err := Generate(mustBits(t, "1101"), CMI)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		want := []wave.Vertex{
			{T: 0, Level: wave.Zero, Move: true}, // 1-bit on the zero rail, flips polarity
			{T: 1, Level: wave.Zero},
			{T: 1, Level: wave.High}, // 1-bit high, flips back
			{T: 2, Level: wave.High},
			{T: 2, Level: wave.Zero}, // 0-bit: zero then high
			{T: 2.5, Level: wave.Zero},
			{T: 2.5, Level: wave.High},
			{T: 3, Level: wave.High},
			{T: 3, Level: wave.Zero}, // 1-bit on the zero rail again
			{T: 4, Level: wave.Zero},
		}
		assertVertices(t, w, want)
	})

	t.Run("zero bits always end high", func(t *testing.T) {
		w, err := Generate(mustBits(t, "000"), CMI)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		_, second := bitLevels(w)
		for i, level := range second {
			if level != wave.High {
				t.Errorf("0-bit %d second half = %v, want %v", i, level, wave.High)
			}
		}
	})

	t.Run("low rail never used", func(t *testing.T) {
		w, err := Generate(mustBits(t, "10110100"), CMI)
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		for i, v := range w.Vertices {
			if v.Level == wave.Low {
				t.Errorf("vertex %d uses the low rail", i)
			}
		}
	})

	t.Run("positive initial polarity", func(t *testing.T) {
		w, err := Generate(mustBits(t, "1"), CMI, WithInitialPolarity(1))
		if err != nil {
			t.Fatalf("Generate error = %v", err)
		}

		first, _ := bitLevels(w)
		if first[0] != wave.High {
			t.Errorf("first 1-bit = %v, want %v", first[0], wave.High)
		}
	})
}

func TestGenerateProperties(t *testing.T) {
	inputs := []string{"1", "0", "01000001", "1100101", "0000", "1111", "10110100"}

	for _, scheme := range Schemes() {
		for _, input := range inputs {
			bits := mustBits(t, input)
			w, err := Generate(bits, scheme)
			if err != nil {
				t.Fatalf("Generate(%q, %v) error = %v", input, scheme, err)
			}

			t.Run(string(scheme)+"/"+input, func(t *testing.T) {
				if err := w.Validate(); err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				if w.Scheme != string(scheme) {
					t.Errorf("Scheme = %q, want %q", w.Scheme, scheme)
				}
				if w.BitCount != len(bits) {
					t.Errorf("BitCount = %d, want %d", w.BitCount, len(bits))
				}

				// Positions stay within the bit-width range.
				last := w.Vertices[len(w.Vertices)-1]
				if last.T > float64(len(bits)) {
					t.Errorf("last vertex at %g exceeds %d bit-width units", last.T, len(bits))
				}

				// Continuous polyline: exactly one pen-up vertex.
				if got := moveCount(w); got != 1 {
					t.Errorf("move count = %d, want 1", got)
				}

				// Between one and four vertices per bit.
				perBit := float64(len(w.Vertices)) / float64(len(bits))
				if perBit < 1 || perBit > 4.5 {
					t.Errorf("vertices per bit = %g, want within [1, 4] plus the opening move", perBit)
				}
			})
		}
	}
}

func TestGenerateIdempotent(t *testing.T) {
	bits, err := bitstream.Encode("idempotent")
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}

	for _, scheme := range Schemes() {
		a, err := Generate(bits, scheme)
		if err != nil {
			t.Fatalf("Generate(%v) error = %v", scheme, err)
		}
		b, err := Generate(bits, scheme)
		if err != nil {
			t.Fatalf("Generate(%v) error = %v", scheme, err)
		}

		if len(a.Vertices) != len(b.Vertices) {
			t.Fatalf("%v: vertex counts differ: %d vs %d", scheme, len(a.Vertices), len(b.Vertices))
		}
		for i := range a.Vertices {
			if a.Vertices[i] != b.Vertices[i] {
				t.Errorf("%v: vertex %d differs: %+v vs %+v", scheme, i, a.Vertices[i], b.Vertices[i])
			}
		}
	}
}

// assertVertices compares a waveform's vertices against the expected
// sequence, reporting the first mismatch.
func assertVertices(t *testing.T, w *wave.Waveform, want []wave.Vertex) {
	t.Helper()
	if len(w.Vertices) != len(want) {
		t.Fatalf("vertex count = %d, want %d\ngot: %+v", len(w.Vertices), len(want), w.Vertices)
	}
	for i := range want {
		if w.Vertices[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, w.Vertices[i], want[i])
		}
	}
}
