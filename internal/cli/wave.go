package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/config"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/io"
	"github.com/EvapeGT/NetCom/pkg/linecode"
	"github.com/EvapeGT/NetCom/pkg/pipeline"
)

// waveCommand creates the wave command for rendering waveforms.
func (c *CLI) waveCommand() *cobra.Command {
	var (
		bits       string
		file       string
		bitsFile   string
		importPath string
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "wave [text]",
		Short: "Render a line-coded waveform from text or bits",
		Long: `Render a line-coded waveform from text or bits.

The wave command encodes the input into a bit sequence, generates the signal
waveform for the selected line coding scheme, and renders it to one or more
output formats. The text format draws the waveform with box characters and
goes to stdout unless --output is given; image formats are written to files
named after the input.

A waveform previously rendered as JSON can be re-rendered with --import,
skipping the encode and generate stages.

When --format is omitted it follows the --output extension if one is given,
then the configured default (text).

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Text = args[0]
			}
			opts.Bits = bits

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if formatsStr == "" {
				if f, ok := formatForPath(output); ok {
					formatsStr = f
				} else if cfg.Render.Format != "" {
					formatsStr = cfg.Render.Format
				}
			}
			applyConfigDefaults(cmd, cfg, &opts)

			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}

			ctx := withLogger(cmd.Context(), c.Logger)
			if importPath != "" {
				if opts.Text != "" || file != "" || bitsFile != "" {
					return errors.New(errors.ErrCodeInvalidInput,
						"--import cannot be combined with text input")
				}
				return c.runWaveImport(ctx, importPath, opts, output, noCache)
			}
			return c.runWave(ctx, file, bitsFile, opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", opts.Refresh, "recompute even if cached")

	// Input flags
	cmd.Flags().StringVar(&bits, "bits", "", "raw bit string instead of text")
	cmd.Flags().StringVar(&file, "file", "", "read input text from a file")
	cmd.Flags().StringVar(&bitsFile, "bits-file", "", "read a '0'/'1' bit document from a file")
	cmd.Flags().StringVar(&importPath, "import", "", "re-render a waveform exported as JSON")

	// Scheme flags
	cmd.Flags().StringVarP(&opts.Scheme, "scheme", "s", opts.Scheme, "line coding scheme: nrz-l (default), rz, manchester, ami, cmi")
	cmd.Flags().IntVar(&opts.Polarity, "polarity", opts.Polarity, "initial polarity for alternating schemes (1 or -1)")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg, png, json, text (comma-separated)")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "color theme: classic (default), dark, print")
	cmd.Flags().Float64Var(&opts.Zoom, "zoom", opts.Zoom, "bit interval width in pixels")
	cmd.Flags().Float64Var(&opts.RailGap, "rail-gap", opts.RailGap, "vertical distance between rails in pixels")
	cmd.Flags().BoolVar(&opts.Grid, "grid", opts.Grid, "draw the bit interval grid")
	cmd.Flags().BoolVar(&opts.BitLabels, "bit-labels", opts.BitLabels, "draw bit values above each interval")
	cmd.Flags().BoolVar(&opts.RailLabels, "rail-labels", opts.RailLabels, "draw voltage rail labels")
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "title drawn above the waveform")
	cmd.Flags().IntVar(&opts.CellsPerBit, "cells", opts.CellsPerBit, "terminal cells per bit interval (text format)")

	return cmd
}

// applyConfigDefaults overlays config file values onto options for flags the
// user did not set explicitly.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config, opts *pipeline.Options) {
	flags := cmd.Flags()
	if !flags.Changed("scheme") && cfg.Defaults.Scheme != "" {
		opts.Scheme = cfg.Defaults.Scheme
	}
	if !flags.Changed("polarity") && cfg.Defaults.Polarity != 0 {
		opts.Polarity = cfg.Defaults.Polarity
	}
	if !flags.Changed("theme") && cfg.Render.Theme != "" {
		opts.Theme = cfg.Render.Theme
	}
	if !flags.Changed("zoom") && cfg.Render.Zoom > 0 {
		opts.Zoom = cfg.Render.Zoom
	}
	if !flags.Changed("cells") && cfg.Render.CellsPerBit > 0 {
		opts.CellsPerBit = cfg.Render.CellsPerBit
	}
	if !flags.Changed("grid") {
		opts.Grid = cfg.Render.Grid
	}
	if !flags.Changed("bit-labels") {
		opts.BitLabels = cfg.Render.BitLabels
	}
	if !flags.Changed("rail-labels") {
		opts.RailLabels = cfg.Render.RailLabels
	}
}

// runWave encodes the input, generates the waveform, and writes artifacts.
func (c *CLI) runWave(ctx context.Context, file, bitsFile string, opts pipeline.Options, output string, noCache bool) error {
	text, bitsIn, err := resolveInput(opts.Text, opts.Bits, file, bitsFile)
	if err != nil {
		return err
	}
	opts.Text, opts.Bits = text, bitsIn

	if scheme, err := linecode.ParseScheme(opts.Scheme); err == nil && opts.Polarity != 0 && !scheme.Alternating() {
		printWarning("Scheme %s ignores --polarity", scheme.Name())
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s waveform...", opts.Scheme))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Waveform failed")
		return fmt.Errorf("wave: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	input := text
	if input == "" {
		input = bitsIn
	}
	return writeArtifacts(ctx, artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      defaultBase(input),
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
		stats:     result.Stats,
	})
}

// runWaveImport re-renders a previously exported waveform document.
func (c *CLI) runWaveImport(ctx context.Context, path string, opts pipeline.Options, output string, noCache bool) error {
	w, err := io.ImportJSON(path)
	if err != nil {
		return err
	}

	// Bit labels need the original bit sequence, which an exported document
	// does not carry. Accept it via --bits, otherwise drop the labels.
	var bits bitstream.Sequence
	if opts.Bits != "" {
		bits, err = bitstream.Parse(opts.Bits)
		if err != nil {
			return err
		}
	} else {
		opts.BitLabels = false
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s waveform...", w.Scheme))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, w, bits, opts)
	if err != nil {
		spinner.StopWithError("Waveform failed")
		return fmt.Errorf("wave: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(ctx, artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      strings.TrimSuffix(path, filepath.Ext(path)),
		output:    output,
		cacheHit:  cacheHit,
		stats:     pipeline.Stats{BitCount: len(bits), VertexCount: len(w.Vertices)},
	})
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // base path for derived output names
	output    string // explicit output path ("-" for stdout)
	cacheHit  bool
	stats     pipeline.Stats
}

// writeArtifacts writes rendered artifacts to their output files and prints a
// completion summary. Output "-" streams a single format to stdout; the text
// format goes to stdout by default when it is the only format requested.
func writeArtifacts(ctx context.Context, p artifactWriteParams) error {
	if p.output == "-" {
		if len(p.formats) != 1 {
			return errors.New(errors.ErrCodeInvalidInput, "writing to stdout requires a single format")
		}
		return writeArtifact(ctx, "", p.artifacts[p.formats[0]])
	}
	if p.output == "" && len(p.formats) == 1 && p.formats[0] == pipeline.FormatText {
		return writeArtifact(ctx, "", p.artifacts[pipeline.FormatText])
	}

	base := p.base
	if p.output != "" {
		base = stripFormatExt(p.output)
	}

	var paths []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + extFor(format)
		if len(p.formats) == 1 && p.output != "" {
			path = p.output
		}
		if err := writeArtifact(ctx, path, data); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	printSuccess("Waveform complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.stats.BitCount, p.stats.VertexCount, p.cacheHit)
	return nil
}

// writeArtifact writes a single artifact to path, or to stdout when path is empty.
func writeArtifact(ctx context.Context, path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if path != "" {
		loggerFromContext(ctx).Debugf("Wrote %s: %d bytes", path, len(data))
	}
	return nil
}

// extFor maps a render format to its file extension.
func extFor(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}

// stripFormatExt removes a known output format extension from path, if present.
func stripFormatExt(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for format := range pipeline.ValidFormats {
		if ext == extFor(format) {
			return strings.TrimSuffix(path, "."+ext)
		}
	}
	return path
}

// formatForPath infers the render format from an output file extension.
func formatForPath(path string) (string, bool) {
	if path == "" || path == "-" {
		return "", false
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for format := range pipeline.ValidFormats {
		if ext == extFor(format) {
			return format, true
		}
	}
	return "", false
}

// defaultBase derives an output base name from the input text or bits.
func defaultBase(input string) string {
	if slug := slugify(input); slug != "" {
		return slug
	}
	return "waveform"
}

// slugify lowercases input and keeps letters and digits, separating runs with
// dashes. The result is capped at 24 characters.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		if b.Len() >= 24 {
			break
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
