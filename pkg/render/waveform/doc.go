// Package waveform provides output format renderers for digital waveforms.
//
// # Overview
//
// A sink transforms a generated [wave.Waveform] into a final output format.
// This package provides renderers for:
//
//   - SVG: Scalable vector plot for documents and the web
//   - PNG: Raster plot rendered natively (no external tools)
//   - JSON: Vertex data export for external tools
//   - Terminal: Fixed-width text plot for the CLI and TUI
//
// # SVG and PNG Output
//
// [RenderSVG] and [RenderPNG] draw the same plot geometry so both formats
// accept the same options:
//
//	svg := waveform.RenderSVG(w,
//	    waveform.WithBits(bits),
//	    waveform.WithGrid(),
//	    waveform.WithTheme(waveform.ThemeDark),
//	)
//
// Image options:
//
//   - [WithZoom]: Width of one bit interval in pixels
//   - [WithRailGap]: Vertical distance between voltage rails
//   - [WithTheme]: Color palette ([ThemeClassic], [ThemeDark], [ThemePrint])
//   - [WithGrid]: Bit boundary gridlines and dashed rail guides
//   - [WithBits]: Per-bit value labels above the plot
//   - [WithRailLabels]: Voltage rail names in a left gutter
//   - [WithTitle]: Title line above the plot
//
// # JSON Output
//
// [RenderJSON] exports the scheme, bit count, duration, and full vertex
// list, enabling:
//
//   - Integration with external plotting tools
//   - Caching of generated waveforms
//   - Round-trip rendering via [DecodeJSON]
//
// [WithJSONText] and [WithJSONBits] embed the source text and bit string so
// a document is self-describing.
//
// # Terminal Output
//
// [RenderTerminal] draws the waveform with box drawing characters, one row
// per voltage rail. It is the sink behind the CLI's default output and the
// TUI preview.
//
// # Adding New Formats
//
// To add a new output format:
//
//  1. Create a renderer function: func RenderFoo(w *wave.Waveform, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Walk w.Vertices; a pen-up vertex starts a new trace segment
//  4. Register the format in internal/cli for CLI support
//
// The existing sinks provide examples: svg.go for vector output, png.go for
// raster output, json.go for data export, terminal.go for text output.
//
// [wave.Waveform]: github.com/EvapeGT/NetCom/pkg/wave.Waveform
package waveform
