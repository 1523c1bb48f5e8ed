// Package facade provides a minimal concurrency-safe wrapper around a *geocoord.CoordinateTransformer
// for callers sitting behind an FFI or plugin boundary that cannot itself guarantee single-threaded
// access to the transformer (spec.md §9). Every other caller should take a *geocoord.CoordinateTransformer
// directly by parameter; this package exists only for that one carve-out and is not used internally
// by the geocoord package.
package facade

import (
	"sync"

	geocoord "github.com/liyq0307/3dtiles"
)

// Transformer serializes access to an underlying *geocoord.CoordinateTransformer behind a
// sync.Mutex. It is safe for concurrent use by multiple goroutines.
type Transformer struct {
	mu sync.Mutex
	t  *geocoord.CoordinateTransformer
}

// New wraps t. t must not be used directly by any other caller once wrapped.
func New(t *geocoord.CoordinateTransformer) *Transformer {
	return &Transformer{t: t}
}

// ToLocalENU converts p under the wrapped transformer's lock.
func (f *Transformer) ToLocalENU(p geocoord.Vector3) geocoord.Vector3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t.ToLocalENU(p)
}

// ToECEF converts p under the wrapped transformer's lock.
func (f *Transformer) ToECEF(p geocoord.Vector3) geocoord.Vector3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t.ToECEF(p)
}

// ToWGS84 converts p under the wrapped transformer's lock.
func (f *Transformer) ToWGS84(p geocoord.Vector3) (lonDeg, latDeg, heightM float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t.ToWGS84(p)
}

// ConvertUpAxis converts p under the wrapped transformer's lock.
func (f *Transformer) ConvertUpAxis(p geocoord.Vector3, toAxis geocoord.UpAxis) geocoord.Vector3 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t.ConvertUpAxis(p, toAxis)
}

// TransformBatch transforms points in place under the wrapped transformer's lock.
func (f *Transformer) TransformBatch(points []geocoord.Vector3) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t.TransformBatch(points)
}

// EnableGeoidCorrection toggles geoid correction under the wrapped transformer's lock.
func (f *Transformer) EnableGeoidCorrection(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t.EnableGeoidCorrection(enabled)
}

// Close releases the wrapped transformer's resources under its lock.
func (f *Transformer) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t.Close()
}
