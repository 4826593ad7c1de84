package waveform

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// RenderPNG renders a waveform as a PNG image. It draws the same geometry
// as [RenderSVG] onto a raster canvas, so both formats accept the same
// options and produce visually identical plots.
func RenderPNG(w *wave.Waveform, opts ...Option) ([]byte, error) {
	r := newRenderer(w, opts...)
	pal := r.theme.palette()

	dc := gg.NewContext(int(math.Ceil(r.width())), int(math.Ceil(r.height())))
	dc.SetHexColor(pal.Background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	if r.grid {
		drawGrid(dc, r, pal)
	}
	if r.railLabels {
		drawRailLabels(dc, r, pal)
	}
	if len(r.bits) > 0 {
		drawBitLabels(dc, r, pal)
	}
	if r.title != "" {
		dc.SetHexColor(pal.Label)
		dc.DrawStringAnchored(r.title, r.left(), r.pad+7, 0, 0.5)
	}

	dc.SetHexColor(pal.Trace)
	dc.SetLineWidth(2)
	for _, v := range r.w.Vertices {
		if v.Move {
			dc.MoveTo(r.x(v.T), r.y(v.Level))
		} else {
			dc.LineTo(r.x(v.T), r.y(v.Level))
		}
	}
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}

func drawGrid(dc *gg.Context, r *renderer, pal palette) {
	yTop := r.top()
	yBottom := r.top() + 2*r.railGap
	dc.SetHexColor(pal.Grid)
	dc.SetLineWidth(1)
	for i := 0; i <= r.w.BitCount; i++ {
		x := r.x(float64(i))
		dc.DrawLine(x, yTop, x, yBottom)
	}
	dc.Stroke()

	dc.SetHexColor(pal.Rail)
	dc.SetDash(4, 4)
	for _, level := range []wave.Level{wave.High, wave.Zero, wave.Low} {
		y := r.y(level)
		dc.DrawLine(r.x(0), y, r.x(float64(r.w.BitCount)), y)
	}
	dc.Stroke()
	dc.SetDash()
}

func drawRailLabels(dc *gg.Context, r *renderer, pal palette) {
	dc.SetHexColor(pal.Label)
	for _, rail := range []struct {
		level wave.Level
		name  string
	}{
		{wave.High, "+V"},
		{wave.Zero, "0"},
		{wave.Low, "-V"},
	} {
		dc.DrawStringAnchored(rail.name, r.left()-8, r.y(rail.level), 1, 0.5)
	}
}

func drawBitLabels(dc *gg.Context, r *renderer, pal palette) {
	dc.SetHexColor(pal.Label)
	for i, bit := range r.bits {
		x := r.x(float64(i) + 0.5)
		label := "0"
		if bit == 1 {
			label = "1"
		}
		dc.DrawStringAnchored(label, x, r.top()-10, 0.5, 0.5)
	}
}
