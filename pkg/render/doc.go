// Package render groups the visualization sinks for waveform documents.
//
// # Overview
//
// This package tree turns generated waveforms into visual outputs. It
// provides:
//
//   - Waveform plots (in [waveform] subpackage)
//   - Encoder state diagrams (in [statediag] subpackage)
//
// # Waveform Plots
//
// The [waveform] subpackage renders a waveform document onto four sinks that
// share one coordinate system: SVG and PNG for files and the HTTP API, JSON
// for machine consumers, and a box-character terminal sink for the TUI.
//
//	svg := waveform.RenderSVG(w, waveform.WithGrid())
//	png, err := waveform.RenderPNG(w, waveform.WithTheme(waveform.ThemeDark))
//	txt := waveform.RenderTerminal(w, waveform.WithTermBits(bits))
//
// # State Diagrams
//
// The [statediag] subpackage renders each scheme's encoder as a directed
// graph: one node per polarity state, one edge per input bit. Diagrams are
// built as Graphviz DOT and rendered in process.
//
//	dot, err := statediag.ToDOT(scheme, statediag.Options{})
//	svg, err := statediag.RenderSVG(dot)
//
// [waveform]: github.com/EvapeGT/NetCom/pkg/render/waveform
// [statediag]: github.com/EvapeGT/NetCom/pkg/render/statediag
package render
