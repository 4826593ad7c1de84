package waveform

import (
	"bytes"
	"fmt"

	"github.com/EvapeGT/NetCom/pkg/wave"
)

// RenderSVG renders a waveform as a standalone SVG document. The trace is a
// single polyline path; pen-up vertices start a new subpath so disjoint
// segments render without a connecting edge.
func RenderSVG(w *wave.Waveform, opts ...Option) []byte {
	r := newRenderer(w, opts...)
	pal := r.theme.palette()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.1f" height="%.1f">`+"\n",
		r.width(), r.height(), r.width(), r.height())
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", pal.Background)

	if r.grid {
		writeGrid(&buf, r, pal)
	}
	if r.railLabels {
		writeRailLabels(&buf, r, pal)
	}
	if len(r.bits) > 0 {
		writeBitLabels(&buf, r, pal)
	}
	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="monospace" font-size="14" fill="%s">%s</text>`+"\n",
			r.left(), r.pad+14, pal.Label, escapeText(r.title))
	}

	fmt.Fprintf(&buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="miter"/>`+"\n",
		tracePath(r), pal.Trace)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// tracePath builds the SVG path data for the waveform trace. Every pen-up
// vertex maps to an M command, every pen-down vertex to an L command.
func tracePath(r *renderer) string {
	var d bytes.Buffer
	for i, v := range r.w.Vertices {
		cmd := "L"
		if v.Move {
			cmd = "M"
		}
		if i > 0 {
			d.WriteByte(' ')
		}
		fmt.Fprintf(&d, "%s%.1f,%.1f", cmd, r.x(v.T), r.y(v.Level))
	}
	return d.String()
}

func writeGrid(buf *bytes.Buffer, r *renderer, pal palette) {
	yTop := r.top()
	yBottom := r.top() + 2*r.railGap
	for i := 0; i <= r.w.BitCount; i++ {
		x := r.x(float64(i))
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			x, yTop, x, yBottom, pal.Grid)
	}
	for _, level := range []wave.Level{wave.High, wave.Zero, wave.Low} {
		y := r.y(level)
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1" stroke-dasharray="4 4"/>`+"\n",
			r.x(0), y, r.x(float64(r.w.BitCount)), y, pal.Rail)
	}
}

func writeRailLabels(buf *bytes.Buffer, r *renderer, pal palette) {
	for _, rail := range []struct {
		level wave.Level
		name  string
	}{
		{wave.High, "+V"},
		{wave.Zero, "0"},
		{wave.Low, "-V"},
	} {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="monospace" font-size="12" text-anchor="end" fill="%s">%s</text>`+"\n",
			r.left()-8, r.y(rail.level)+4, pal.Label, rail.name)
	}
}

func writeBitLabels(buf *bytes.Buffer, r *renderer, pal palette) {
	for i, bit := range r.bits {
		x := r.x(float64(i) + 0.5)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="monospace" font-size="12" text-anchor="middle" fill="%s">%d</text>`+"\n",
			x, r.top()-6, pal.Label, bit)
	}
}

// escapeText escapes the characters with special meaning in SVG text nodes.
func escapeText(s string) string {
	var out bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			out.WriteString("&amp;")
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
