package waveform

import (
	"strings"
	"testing"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
)

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testWave()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output should start with an svg element")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output should end with a closing svg tag")
	}
	if !strings.Contains(svg, `viewBox="0 0 128.0 128.0"`) {
		t.Errorf("viewBox not computed from bit count, got:\n%s", svg)
	}
	want := `d="M24.0,64.0 L64.0,64.0 L64.0,24.0 L104.0,24.0"`
	if !strings.Contains(svg, want) {
		t.Errorf("trace path missing %s, got:\n%s", want, svg)
	}
}

func TestRenderSVGDecorations(t *testing.T) {
	svg := string(RenderSVG(testWave(),
		WithGrid(),
		WithBits(bitstream.Sequence{0, 1}),
		WithRailLabels(),
		WithTitle("NRZ-L"),
	))

	// 3 bit boundary lines plus 3 rail guides.
	if got := strings.Count(svg, "<line"); got != 6 {
		t.Errorf("line count = %d, want 6", got)
	}
	// 2 bit labels, 3 rail labels, 1 title.
	if got := strings.Count(svg, "<text"); got != 6 {
		t.Errorf("text count = %d, want 6", got)
	}
	if !strings.Contains(svg, ">NRZ-L</text>") {
		t.Error("title text missing")
	}
	if !strings.Contains(svg, `stroke-dasharray="4 4"`) {
		t.Error("rail guides should be dashed")
	}
}

func TestRenderSVGTheme(t *testing.T) {
	classic := string(RenderSVG(testWave()))
	dark := string(RenderSVG(testWave(), WithTheme(ThemeDark)))

	if !strings.Contains(classic, `fill="#ffffff"`) {
		t.Error("classic theme should have a white background")
	}
	if !strings.Contains(dark, `fill="#1a1b26"`) {
		t.Error("dark theme should have a dark background")
	}
	if classic == dark {
		t.Error("themes should produce different documents")
	}
}

func TestRenderSVGDisjointSegments(t *testing.T) {
	w := testWave()
	w.Vertices[2].Move = true
	svg := string(RenderSVG(w))

	want := `d="M24.0,64.0 L64.0,64.0 M64.0,24.0 L104.0,24.0"`
	if !strings.Contains(svg, want) {
		t.Errorf("pen-up vertex should open a new subpath, got:\n%s", svg)
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a<b", "a&lt;b"},
		{"a&b", "a&amp;b"},
		{"a>b", "a&gt;b"},
	}
	for _, tt := range tests {
		if got := escapeText(tt.in); got != tt.want {
			t.Errorf("escapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRendererGeometry(t *testing.T) {
	r := newRenderer(testWave(), WithZoom(100), WithRailGap(30))

	if got := r.x(0.5); got != r.left()+50 {
		t.Errorf("x(0.5) = %v, want %v", got, r.left()+50)
	}
	if got := r.y(1) - r.y(-1); got != -60 {
		t.Errorf("high rail should sit 60px above low rail, delta = %v", got)
	}
}

func TestRendererClipsBits(t *testing.T) {
	r := newRenderer(testWave(), WithBits(bitstream.Sequence{0, 1, 1, 0}))
	if len(r.bits) != 2 {
		t.Errorf("bits count = %d, want 2 (clipped to bit count)", len(r.bits))
	}
}
