package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/EvapeGT/NetCom/pkg/bitstream"
	"github.com/EvapeGT/NetCom/pkg/cache"
	"github.com/EvapeGT/NetCom/pkg/errors"
	"github.com/EvapeGT/NetCom/pkg/observability"
	"github.com/EvapeGT/NetCom/pkg/render/waveform"
	"github.com/EvapeGT/NetCom/pkg/wave"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete encode → generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Encode
	source := "text"
	if opts.Bits != "" {
		source = "bits"
	}
	observability.Pipeline().OnEncodeStart(ctx, source)
	encodeStart := time.Now()
	bits, err := r.Encode(opts)
	observability.Pipeline().OnEncodeComplete(ctx, source, len(bits), time.Since(encodeStart), err)
	if err != nil {
		return nil, err
	}
	result.Bits = bits
	result.BitsHash = cache.Hash([]byte(bits.String()))
	result.Stats.EncodeTime = time.Since(encodeStart)
	result.Stats.BitCount = len(bits)

	r.Logger.Info("encoded input",
		"bits", len(bits),
		"duration", result.Stats.EncodeTime)

	// Stage 2: Generate
	observability.Pipeline().OnGenerateStart(ctx, opts.Scheme, len(bits))
	generateStart := time.Now()
	w, waveHit, err := r.GenerateWithCacheInfo(ctx, bits, opts)
	vertexCount := 0
	if w != nil {
		vertexCount = len(w.Vertices)
	}
	observability.Pipeline().OnGenerateComplete(ctx, opts.Scheme, vertexCount, time.Since(generateStart), err)
	if err != nil {
		return nil, err
	}
	result.Waveform = w
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.VertexCount = len(w.Vertices)
	result.CacheInfo.WaveHit = waveHit

	r.Logger.Info("generated waveform",
		"scheme", w.Scheme,
		"vertices", len(w.Vertices),
		"duration", result.Stats.GenerateTime)

	// Stage 3: Render
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, w, bits, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Encode converts the pipeline input into a bit sequence after validation.
// Encoding is pure and fast, so it is never cached.
func (r *Runner) Encode(opts Options) (bitstream.Sequence, error) {
	if err := opts.ValidateForEncode(); err != nil {
		return nil, err
	}
	return Encode(opts)
}

// GenerateWithCacheInfo generates a waveform with caching and returns cache hit info.
// Cached waveforms are stored as their JSON export, so a corrupt entry
// simply falls through to regeneration.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, bits bitstream.Sequence, opts Options) (*wave.Waveform, bool, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key
	bitsHash := cache.Hash([]byte(bits.String()))
	cacheKey := r.Keyer.WaveKey(opts.Scheme, bitsHash, opts.WaveKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if w, err := waveform.DecodeJSON(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "wave")
				return w, true, nil // Cache hit
			}
		}
		observability.Cache().OnCacheMiss(ctx, "wave")
	}

	// Generate
	w, err := GenerateWave(bits, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if !opts.Refresh {
		if data, err := waveform.RenderJSON(w); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLWave)
			observability.Cache().OnCacheSet(ctx, "wave", len(data))
		}
	}

	return w, false, nil // Cache miss
}

// Generate is a convenience wrapper that calls GenerateWithCacheInfo and discards the cache hit info.
func (r *Runner) Generate(ctx context.Context, bits bitstream.Sequence, opts Options) (*wave.Waveform, error) {
	w, _, err := r.GenerateWithCacheInfo(ctx, bits, opts)
	return w, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, w *wave.Waveform, bits bitstream.Sequence, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the waveform's JSON export
	waveData, err := waveform.RenderJSON(w)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize waveform for cache key")
	}
	waveHash := cache.Hash(waveData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(waveHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered, err := RenderWave(w, bits, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(waveHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, w *wave.Waveform, bits bitstream.Sequence, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, w, bits, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
