package io

import (
	"fmt"
	"io"
	"os"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/render/waveform"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// WriteJSON encodes a waveform as JSON and writes it to w.
// The optional bits and text are embedded so the document is
// self-contained. This format can be re-imported with [ReadJSON] for
// round-trip processing.
func WriteJSON(wf *wave.Waveform, bits bitstream.Sequence, text string, w io.Writer) error {
	var opts []waveform.JSONOption
	if len(bits) > 0 {
		opts = append(opts, waveform.WithJSONBits(bits))
	}
	if text != "" {
		opts = append(opts, waveform.WithJSONText(text))
	}

	data, err := waveform.RenderJSON(wf, opts...)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportJSON writes a waveform to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(wf *wave.Waveform, bits bitstream.Sequence, text string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(wf, bits, text, f)
}
