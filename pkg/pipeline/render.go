package pipeline

import (
	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/render/waveform"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// RenderWave generates output artifacts in the requested formats. The bit
// sequence feeds the per-bit labels and the JSON export; callers that only
// have a waveform may pass nil bits to render without them.
func RenderWave(w *wave.Waveform, bits bitstream.Sequence, opts Options) (map[string][]byte, error) {
	imageOpts := buildImageOptions(bits, opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = waveform.RenderSVG(w, imageOpts...)
		case FormatPNG:
			data, err = waveform.RenderPNG(w, imageOpts...)
		case FormatJSON:
			data, err = waveform.RenderJSON(w, buildJSONOptions(bits, opts)...)
		case FormatText:
			data = []byte(waveform.RenderTerminal(w, buildTermOptions(bits, opts)...))
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
		}

		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildImageOptions builds the shared SVG/PNG rendering options.
func buildImageOptions(bits bitstream.Sequence, opts Options) []waveform.Option {
	imageOpts := []waveform.Option{
		waveform.WithZoom(opts.Zoom),
		waveform.WithRailGap(opts.RailGap),
		waveform.WithTheme(waveform.Theme(opts.Theme)),
	}

	if opts.Grid {
		imageOpts = append(imageOpts, waveform.WithGrid())
	}
	if opts.BitLabels && len(bits) > 0 {
		imageOpts = append(imageOpts, waveform.WithBits(bits))
	}
	if opts.RailLabels {
		imageOpts = append(imageOpts, waveform.WithRailLabels())
	}
	if opts.Title != "" {
		imageOpts = append(imageOpts, waveform.WithTitle(opts.Title))
	}

	return imageOpts
}

// buildJSONOptions builds the JSON export options.
func buildJSONOptions(bits bitstream.Sequence, opts Options) []waveform.JSONOption {
	var jsonOpts []waveform.JSONOption
	if opts.Text != "" {
		jsonOpts = append(jsonOpts, waveform.WithJSONText(opts.Text))
	}
	if len(bits) > 0 {
		jsonOpts = append(jsonOpts, waveform.WithJSONBits(bits))
	}
	return jsonOpts
}

// buildTermOptions builds the terminal rendering options.
func buildTermOptions(bits bitstream.Sequence, opts Options) []waveform.TermOption {
	termOpts := []waveform.TermOption{
		waveform.WithTermCellsPerBit(opts.CellsPerBit),
	}
	if opts.BitLabels && len(bits) > 0 {
		termOpts = append(termOpts, waveform.WithTermBits(bits))
	}
	if opts.RailLabels {
		termOpts = append(termOpts, waveform.WithTermRailLabels())
	}
	return termOpts
}
