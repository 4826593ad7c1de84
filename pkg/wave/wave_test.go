package wave

import (
	"testing"
)

// flat builds a simple two-bit NRZ-style waveform used across tests:
// high on [0,1], zero on [1,2], with the vertical step at position 1.
func flat() *Waveform {
	return &Waveform{
		Scheme:   "nrz-l",
		BitCount: 2,
		Vertices: []Vertex{
			{T: 0, Level: High, Move: true},
			{T: 1, Level: High},
			{T: 1, Level: Zero},
			{T: 2, Level: Zero},
		},
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{High, "high"},
		{Zero, "zero"},
		{Low, "low"},
		{Level(5), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelValid(t *testing.T) {
	for _, l := range []Level{Low, Zero, High} {
		if !l.Valid() {
			t.Errorf("Level(%d).Valid() = false, want true", l)
		}
	}
	for _, l := range []Level{Level(2), Level(-2), Level(100)} {
		if l.Valid() {
			t.Errorf("Level(%d).Valid() = true, want false", l)
		}
	}
}

func TestLevelAt(t *testing.T) {
	w := flat()

	tests := []struct {
		name string
		t    float64
		want Level
	}{
		{"start", 0, High},
		{"mid first bit", 0.5, High},
		{"at transition", 1, Zero},
		{"mid second bit", 1.5, Zero},
		{"end", 2, Zero},
		{"before start", -1, High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.LevelAt(tt.t); got != tt.want {
				t.Errorf("LevelAt(%g) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	t.Run("single continuous polyline", func(t *testing.T) {
		segments := flat().Segments()
		if len(segments) != 1 {
			t.Fatalf("Segments() count = %d, want 1", len(segments))
		}
		if len(segments[0]) != 4 {
			t.Errorf("segment length = %d, want 4", len(segments[0]))
		}
	})

	t.Run("move vertex opens new segment", func(t *testing.T) {
		w := &Waveform{
			Scheme:   "test",
			BitCount: 2,
			Vertices: []Vertex{
				{T: 0, Level: High, Move: true},
				{T: 1, Level: High},
				{T: 1, Level: Low, Move: true},
				{T: 2, Level: Low},
			},
		}
		segments := w.Segments()
		if len(segments) != 2 {
			t.Fatalf("Segments() count = %d, want 2", len(segments))
		}
		if len(segments[0]) != 2 || len(segments[1]) != 2 {
			t.Errorf("segment lengths = %d, %d, want 2, 2", len(segments[0]), len(segments[1]))
		}
	})

	t.Run("empty waveform", func(t *testing.T) {
		w := &Waveform{}
		if segments := w.Segments(); segments != nil {
			t.Errorf("Segments() = %v, want nil", segments)
		}
	})
}

func TestDuration(t *testing.T) {
	w := flat()
	if got := w.Duration(); got != 2 {
		t.Errorf("Duration() = %g, want 2", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		w       *Waveform
		wantErr bool
	}{
		{
			name:    "valid waveform",
			w:       flat(),
			wantErr: false,
		},
		{
			name:    "no vertices",
			w:       &Waveform{BitCount: 1},
			wantErr: true,
		},
		{
			name: "first vertex not a move",
			w: &Waveform{
				BitCount: 1,
				Vertices: []Vertex{{T: 0, Level: High}},
			},
			wantErr: true,
		},
		{
			name: "decreasing positions",
			w: &Waveform{
				BitCount: 2,
				Vertices: []Vertex{
					{T: 0, Level: High, Move: true},
					{T: 1.5, Level: High},
					{T: 1, Level: Zero},
				},
			},
			wantErr: true,
		},
		{
			name: "position beyond bit count",
			w: &Waveform{
				BitCount: 1,
				Vertices: []Vertex{
					{T: 0, Level: High, Move: true},
					{T: 1.5, Level: High},
				},
			},
			wantErr: true,
		},
		{
			name: "undefined level",
			w: &Waveform{
				BitCount: 1,
				Vertices: []Vertex{
					{T: 0, Level: Level(3), Move: true},
					{T: 1, Level: High},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
