package cache

import "fmt"

// Keyer builds cache keys for the pipeline stages. Keys embed every input
// that affects the cached value so stale entries can never be served for
// changed options.
type Keyer interface {
	// HTTPKey generates a key for HTTP response caching.
	HTTPKey(namespace, key string) string

	// WaveKey generates a key for generated waveform caching.
	WaveKey(scheme, bitsHash string, opts WaveKeyOpts) string

	// ArtifactKey generates a key for rendered artifact caching.
	ArtifactKey(waveHash string, opts ArtifactKeyOpts) string
}

// WaveKeyOpts holds the generation options that shape a waveform.
type WaveKeyOpts struct {
	Polarity int
}

// ArtifactKeyOpts holds the render options that shape an artifact.
type ArtifactKeyOpts struct {
	Format     string
	Theme      string
	Zoom       float64
	RailGap    float64
	Grid       bool
	BitLabels  bool
	RailLabels bool
	Title      string
	Cells      int
}

// DefaultKeyer is the standard key builder.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key builder.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return fmt.Sprintf("http:%s:%s", namespace, key)
}

// WaveKey generates a key for generated waveform caching.
func (k *DefaultKeyer) WaveKey(scheme, bitsHash string, opts WaveKeyOpts) string {
	return hashKey("wave", scheme, bitsHash, opts)
}

// ArtifactKey generates a key for rendered artifact caching.
func (k *DefaultKeyer) ArtifactKey(waveHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", waveHash, opts)
}
