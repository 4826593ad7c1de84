package waveform

import (
	"strings"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// TermOption customizes terminal rendering.
type TermOption func(*termRenderer)

// WithTermCellsPerBit sets the number of character cells per bit interval.
// Even values keep mid-bit transitions on a cell boundary. Values below 1
// are clamped to 1; the default is 4.
func WithTermCellsPerBit(n int) TermOption {
	return func(r *termRenderer) { r.cells = n }
}

// WithTermBits writes a header row labeling each bit interval with its
// value.
func WithTermBits(bits bitstream.Sequence) TermOption {
	return func(r *termRenderer) { r.bits = bits }
}

// WithTermRailLabels prefixes each rail row with its voltage name.
func WithTermRailLabels() TermOption {
	return func(r *termRenderer) { r.railLabels = true }
}

type termRenderer struct {
	cells      int
	bits       bitstream.Sequence
	railLabels bool
}

// RenderTerminal renders a waveform as fixed-width text built from box
// drawing characters. The plot has one row per voltage rail with high on
// top, and level changes appear as corner pairs joined by a vertical run.
// The trace is drawn from sampled levels, so disjoint pen segments render
// as one continuous line.
func RenderTerminal(w *wave.Waveform, opts ...TermOption) string {
	r := &termRenderer{cells: 4}
	for _, opt := range opts {
		opt(r)
	}
	if r.cells < 1 {
		r.cells = 1
	}
	if len(r.bits) > w.BitCount {
		r.bits = r.bits[:w.BitCount]
	}

	cols := w.BitCount * r.cells
	grid := make([][]rune, 3)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	prev := wave.Zero
	for c := 0; c < cols; c++ {
		// Sampling at cell centers keeps t off the transition instants.
		t := (float64(c) + 0.5) / float64(r.cells)
		level := w.LevelAt(t)
		row := railRow(level)
		if c > 0 && level != prev {
			from := railRow(prev)
			if row > from {
				grid[from][c] = '┐'
				grid[row][c] = '└'
			} else {
				grid[from][c] = '┘'
				grid[row][c] = '┌'
			}
			for mid := min(from, row) + 1; mid < max(from, row); mid++ {
				grid[mid][c] = '│'
			}
		} else {
			grid[row][c] = '─'
		}
		prev = level
	}

	var lines []string
	if len(r.bits) > 0 {
		lines = append(lines, r.prefix("")+bitHeader(r.bits, r.cells))
	}
	names := []string{"+V", " 0", "-V"}
	for i, rowRunes := range grid {
		lines = append(lines, r.prefix(names[i])+string(rowRunes))
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (r *termRenderer) prefix(name string) string {
	if !r.railLabels {
		return ""
	}
	if name == "" {
		return strings.Repeat(" ", 3)
	}
	return name + " "
}

// bitHeader centers each bit value inside its cell span.
func bitHeader(bits bitstream.Sequence, cells int) string {
	header := make([]rune, len(bits)*cells)
	for i := range header {
		header[i] = ' '
	}
	for i, bit := range bits {
		header[i*cells+cells/2] = '0' + rune(bit)
	}
	return string(header)
}

// railRow maps a level to its grid row, high rail first.
func railRow(level wave.Level) int {
	return 1 - int(level)
}
