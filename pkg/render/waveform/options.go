package waveform

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// Option customizes image rendering. Options are shared by the SVG and PNG
// sinks, which draw the same geometry onto different canvases. The JSON and
// terminal sinks carry their own option types.
type Option func(*renderer)

// WithZoom sets the horizontal width of one bit interval in pixels.
func WithZoom(px float64) Option { return func(r *renderer) { r.zoom = px } }

// WithRailGap sets the vertical distance between adjacent voltage rails in
// pixels.
func WithRailGap(px float64) Option { return func(r *renderer) { r.railGap = px } }

// WithTheme selects the color palette.
func WithTheme(t Theme) Option { return func(r *renderer) { r.theme = t } }

// WithGrid draws a vertical gridline at every bit boundary and dashed
// horizontal guides along the three voltage rails.
func WithGrid() Option { return func(r *renderer) { r.grid = true } }

// WithBits labels each bit interval with its bit value. The sequence must
// be the one the waveform was generated from; extra or missing bits are
// clipped to the waveform's bit count.
func WithBits(bits bitstream.Sequence) Option { return func(r *renderer) { r.bits = bits } }

// WithRailLabels writes the voltage rail names (+V, 0, -V) in a left gutter.
func WithRailLabels() Option { return func(r *renderer) { r.railLabels = true } }

// WithTitle draws a title line above the plot.
func WithTitle(title string) Option { return func(r *renderer) { r.title = title } }

// renderer holds the resolved drawing parameters for one waveform image.
type renderer struct {
	w          *wave.Waveform
	zoom       float64
	railGap    float64
	pad        float64
	theme      Theme
	grid       bool
	bits       bitstream.Sequence
	railLabels bool
	title      string
}

func newRenderer(w *wave.Waveform, opts ...Option) *renderer {
	r := &renderer{
		w:       w,
		zoom:    40,
		railGap: 40,
		pad:     24,
		theme:   ThemeClassic,
	}
	for _, opt := range opts {
		opt(r)
	}
	if len(r.bits) > w.BitCount {
		r.bits = r.bits[:w.BitCount]
	}
	return r
}

// Gutter sizes for labels, in pixels.
const (
	railGutter  = 34
	labelGutter = 18
	titleGutter = 22
)

// left returns the x coordinate of bit time zero.
func (r *renderer) left() float64 {
	x := r.pad
	if r.railLabels {
		x += railGutter
	}
	return x
}

// top returns the y coordinate of the high rail.
func (r *renderer) top() float64 {
	y := r.pad
	if r.title != "" {
		y += titleGutter
	}
	if len(r.bits) > 0 {
		y += labelGutter
	}
	return y
}

func (r *renderer) width() float64 {
	return r.left() + float64(r.w.BitCount)*r.zoom + r.pad
}

func (r *renderer) height() float64 {
	return r.top() + 2*r.railGap + r.pad
}

// x maps a fractional bit time to a canvas x coordinate.
func (r *renderer) x(t float64) float64 {
	return r.left() + t*r.zoom
}

// y maps a voltage level to a canvas y coordinate. High is the top rail,
// low the bottom one.
func (r *renderer) y(level wave.Level) float64 {
	return r.top() + float64(1-int(level))*r.railGap
}
