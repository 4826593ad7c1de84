// Package pkg provides the core libraries for Netcom line-code visualization.
//
// # Overview
//
// Netcom turns text (or raw bit strings) into digital transmission waveforms
// under the classic line-encoding schemes taught in data-communications
// courses: NRZ-L, RZ, Manchester, bipolar AMI, and CMI. The pkg directory is
// organized into four main areas:
//
//  1. Encoding - [bitstream], [linecode], [wave] (text to bits to vertices)
//  2. Rendering - [render/waveform], [render/statediag] (vertices to images)
//  3. Orchestration - [pipeline], [cache], [io] (runs and memoizes the flow)
//  4. Support - [errors], [config], [observability], [buildinfo]
//
// # Architecture
//
// The typical data flow through Netcom:
//
//	Text or bit string
//	         ↓
//	    [bitstream] package (characters → bits)
//	         ↓
//	    [linecode] package (bits → waveform vertices, per scheme)
//	         ↓
//	    [render/waveform] package (vertices → SVG/PNG/JSON/terminal)
//
// The [pipeline] package runs this flow end to end with content-addressed
// caching at the waveform and artifact stages, and is shared by the CLI and
// the HTTP server so both surfaces behave identically.
//
// # Quick Start
//
// Encode a message and render a Manchester waveform:
//
//	import (
//	    "github.com/EvapeGT/NetCom/pkg/bitstream"
//	    "github.com/EvapeGT/NetCom/pkg/linecode"
//	    "github.com/EvapeGT/NetCom/pkg/render/waveform"
//	)
//
//	// 1. Encode text as bits (8 bits per character, MSB first)
//	bits, _ := bitstream.Encode("HI")
//
//	// 2. Generate the waveform for a scheme
//	w, _ := linecode.Generate(bits, linecode.Manchester)
//
//	// 3. Render to SVG
//	svg := waveform.RenderSVG(w,
//	    waveform.WithGrid(),
//	    waveform.WithBits(bits),
//	    waveform.WithTheme(waveform.ThemeDark))
//
// # Main Packages
//
// ## Encoding
//
// [bitstream] - Text-to-bits conversion. Each character becomes 8 bits,
// most significant bit first; input is restricted to printable ASCII so a
// waveform read off the plot maps back to the message unambiguously.
//
// [linecode] - The scheme registry and waveform generation. Each scheme is
// a small encoder strategy over a shared vertex pen; [linecode.Generate] is
// a pure function, so identical inputs always produce identical vertices.
//
// [wave] - The waveform document: voltage levels, polyline vertices in bit
// time, and the JSON serialization shared by the renderers and [io].
//
// ## Rendering
//
// [render/waveform] - Image sinks for waveform documents. SVG and PNG share
// one geometry (grid, rail labels, bit labels, themes); JSON emits the
// document form; the terminal sink draws with box characters for the TUI.
//
// [render/statediag] - Encoder state diagrams as Graphviz DOT, rendered to
// SVG or PNG in process via [github.com/goccy/go-graphviz].
//
// ## Orchestration
//
// [pipeline] - The encode → generate → render flow behind every surface.
// [pipeline.Runner] memoizes waveforms and rendered artifacts through a
// [cache.Cache] and reports per-stage timings and cache hits.
//
// [cache] - Content-addressed caching. FileCache for the CLI (XDG cache
// directory), RedisCache for the hosted server, NullCache to disable.
// Keys are derived from the SHA-256 of the inputs, so a cache never needs
// invalidation beyond TTL expiry.
//
// [io] - Waveform document import/export. Exported JSON round-trips through
// [io.ImportJSON] so a saved run can be re-rendered without re-encoding.
//
// ## Support
//
// [errors] - Coded errors (INVALID_INPUT, UNSUPPORTED_SCHEME, ...) carried
// through every layer; the CLI prints them and the server maps them onto
// HTTP status codes. Includes the shared input validators.
//
// [config] - TOML configuration from the XDG config directory. Flags beat
// config, config beats built-in defaults.
//
// [observability] - Pluggable hook registries for pipeline stages, cache
// traffic, and HTTP requests. No-op unless a consumer registers hooks.
//
// [buildinfo] - Version, commit, and build date injected at link time.
//
// # Common Workflows
//
// Run the full pipeline with caching:
//
//	runner := pipeline.NewRunner(cacheBackend, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Text:    "HI",
//	    Scheme:  "ami",
//	    Formats: []string{pipeline.FormatSVG, pipeline.FormatPNG},
//	})
//
// Export a run and re-render it later:
//
//	_ = io.ExportJSON(w, bits, "HI", "waveform.json")
//	w2, _ := io.ImportJSON("waveform.json")
//
// Render an encoder state diagram:
//
//	dot, _ := statediag.ToDOT(linecode.AMI, statediag.Options{})
//	svg, _ := statediag.RenderSVG(dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/linecode/...     # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [bitstream]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/bitstream
// [linecode]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/linecode
// [wave]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/wave
// [render/waveform]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/render/waveform
// [render/statediag]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/render/statediag
// [pipeline]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/cache
// [io]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/io
// [errors]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/errors
// [config]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/config
// [observability]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/EvapeGT/NetCom/pkg/buildinfo
package pkg
