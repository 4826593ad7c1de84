// Package cache provides pluggable byte caches for pipeline results and
// HTTP responses, with key builders for the waveform domain.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per payload class. Waveforms and artifacts are deterministic
// functions of their key, so the TTLs only bound disk and Redis growth.
const (
	// TTLWave is the lifetime of cached generated waveforms.
	TTLWave = 7 * 24 * time.Hour

	// TTLArtifact is the lifetime of cached rendered artifacts.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLHTTP is the lifetime of cached HTTP responses.
	TTLHTTP = 15 * time.Minute
)

// Cache stores opaque byte payloads under string keys with optional
// expiration. Implementations must treat expired and missing entries
// identically as misses.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero stores the value without
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}
