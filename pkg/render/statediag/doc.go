// Package statediag renders line coding schemes as encoder state diagrams.
//
// # Overview
//
// This package visualizes how each scheme maps bits to voltage levels as a
// small state machine. Alternating schemes (AMI, CMI) show their two
// polarity states and the transitions between them; stateless schemes
// collapse to a single state with one self-edge per bit value. The diagrams
// complement the waveform plot when teaching why a scheme behaves the way
// it does.
//
// # Usage
//
// Build the DOT source for a scheme, then render it:
//
//	dot, err := statediag.ToDOT(linecode.AMI, statediag.Options{})
//	svg, err := statediag.RenderSVG(dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses left-to-right layout (rankdir=LR) with circle
// nodes and a point marker for the initial state.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no external tools are required.
package statediag
