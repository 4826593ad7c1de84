package cache

// ScopedKeyer wraps a Keyer with a prefix so separate deployments or
// server instances sharing one Redis can keep disjoint cache namespaces.
//
// Example usage:
//
//	// Instance-specific keys on a shared backend
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "classroom-a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// WaveKey generates a prefixed key for generated waveform caching.
func (k *ScopedKeyer) WaveKey(scheme, bitsHash string, opts WaveKeyOpts) string {
	return k.prefix + k.inner.WaveKey(scheme, bitsHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifact caching.
func (k *ScopedKeyer) ArtifactKey(waveHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(waveHash, opts)
}
