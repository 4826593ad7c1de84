// Package pipeline provides the core waveform pipeline for NetCom.
//
// This package implements the complete encode → generate → render pipeline
// that can be used by the CLI, API, and TUI components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Encode: Convert input text (or a raw bit string) into a bit sequence
//  2. Generate: Run the line coding scheme over the bits to produce a waveform
//  3. Render: Generate output in various formats (SVG, PNG, JSON, text)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Text:    "A",
//	    Scheme:  "manchester",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Encode only
//	bits, err := runner.Encode(opts)
//
//	// Generate with existing bits
//	w, err := runner.Generate(ctx, bits, opts)
//
//	// Render with existing waveform
//	artifacts, err := runner.Render(ctx, w, bits, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/cache"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/linecode"
	"github.com/EvapeGT/NetCom/pkg/render/waveform"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and TUI
// =============================================================================

const (
	// DefaultZoom is the default width of one bit interval in pixels.
	DefaultZoom = 40.0

	// DefaultRailGap is the default vertical distance between rails in pixels.
	DefaultRailGap = 40.0

	// DefaultCellsPerBit is the default terminal cell count per bit interval.
	DefaultCellsPerBit = 4
)

// DefaultTheme is the default color theme for image formats.
const DefaultTheme = string(waveform.ThemeClassic)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatText: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the waveform pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Encode options. Exactly one of Text or Bits must be set: Text is
	// encoded 8 bits per character, Bits is parsed as a raw '0'/'1' string.
	Text string `json:"text,omitempty"`
	Bits string `json:"bits,omitempty"`

	// Generate options
	Scheme   string `json:"scheme"`
	Polarity int    `json:"polarity,omitempty"` // Initial polarity override for alternating schemes (+1 or -1)
	Refresh  bool   `json:"refresh,omitempty"`  // Bypass the waveform cache

	// Render options. The decoration bools are plain additive flags; entry
	// points that want them on by default (the CLI does) set them when
	// building Options.
	Formats     []string `json:"formats,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	Zoom        float64  `json:"zoom,omitempty"`
	RailGap     float64  `json:"rail_gap,omitempty"`
	Grid        bool     `json:"grid,omitempty"`
	BitLabels   bool     `json:"bit_labels,omitempty"`
	RailLabels  bool     `json:"rail_labels,omitempty"`
	Title       string   `json:"title,omitempty"`
	CellsPerBit int      `json:"cells_per_bit,omitempty"` // Text format resolution

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Bits is the encoded bit sequence.
	Bits bitstream.Sequence

	// BitsHash is the content hash of the bit sequence, used in cache keys
	// and HTTP ETags.
	BitsHash string

	// Waveform is the generated waveform.
	Waveform *wave.Waveform

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BitCount     int
	VertexCount  int
	EncodeTime   time.Duration
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	WaveHit   bool // Whether the generated waveform came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json, text)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForEncode(); err != nil {
		return err
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForEncode checks required fields for encoding.
func (o *Options) ValidateForEncode() error {
	if o.Text == "" && o.Bits == "" {
		return errors.New(errors.ErrCodeInvalidInput, "text or bits is required")
	}
	if o.Text != "" && o.Bits != "" {
		return errors.New(errors.ErrCodeInvalidInput, "text and bits are mutually exclusive")
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// ValidateForGenerate checks required fields for waveform generation.
func (o *Options) ValidateForGenerate() error {
	if o.Scheme == "" {
		return errors.New(errors.ErrCodeInvalidInput, "scheme is required")
	}
	if _, err := linecode.ParseScheme(o.Scheme); err != nil {
		return err
	}
	if o.Polarity != 0 {
		if err := errors.ValidatePolarity(o.Polarity); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Zoom == 0 {
		o.Zoom = DefaultZoom
	}
	if o.RailGap == 0 {
		o.RailGap = DefaultRailGap
	}
	if o.CellsPerBit == 0 {
		o.CellsPerBit = DefaultCellsPerBit
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := waveform.ParseTheme(o.Theme); err != nil {
		return err
	}
	if err := errors.ValidateZoom(o.Zoom); err != nil {
		return err
	}
	if o.CellsPerBit < 1 || o.CellsPerBit > 16 {
		return errors.New(errors.ErrCodeInvalidInput,
			"cells per bit must be between 1 and 16, got %d", o.CellsPerBit)
	}
	return nil
}

// IsAlternating returns true if the selected scheme keeps polarity state.
func (o *Options) IsAlternating() bool {
	scheme, err := linecode.ParseScheme(o.Scheme)
	if err != nil {
		return false
	}
	return scheme.Alternating()
}

// WaveKeyOpts returns cache key options for waveform generation.
func (o *Options) WaveKeyOpts() cache.WaveKeyOpts {
	return cache.WaveKeyOpts{
		Polarity: o.Polarity,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Theme:      o.Theme,
		Zoom:       o.Zoom,
		RailGap:    o.RailGap,
		Grid:       o.Grid,
		BitLabels:  o.BitLabels,
		RailLabels: o.RailLabels,
		Title:      o.Title,
		Cells:      o.CellsPerBit,
	}
}
