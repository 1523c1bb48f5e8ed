// Package projection provides the ProjectionService collaborator interface (spec.md §4.2, §6)
// and a godal-backed implementation over GDAL/OGR spatial references, the external
// spatial-reference library this engine's NeedsOGRTransform path depends on.
package projection

// Handle transforms points from a fixed source CRS to WGS84 geographic coordinates. Axis
// order is always longitude first, latitude second, height third ("traditional GIS order"),
// independent of the source CRS's declared axis order, per spec.md §4.2/§6.
//
// A Handle is owned by whoever created it and must be released exactly once via Close.
type Handle interface {
	// Transform converts (x, y, z) in the handle's source CRS to (lonDeg, latDeg, heightM).
	Transform(x, y, z float64) (lonDeg, latDeg, heightM float64, err error)
	// Close releases the handle. Safe to call once; calling it more than once is the caller's
	// bug, not this package's concern.
	Close()
}

// Service creates Handles for a source CRS identified either by EPSG code or by WKT text. A
// Service implementation that cannot build a handle returns ok=false rather than an error —
// per spec.md §4.2/§7, this is a non-fatal signal: the transformer degrades to pass-through.
type Service interface {
	CreateFromEPSG(code int) (Handle, bool)
	CreateFromWKT(wkt string) (Handle, bool)
}

// NullService never produces a handle. It grounds the "projection service unavailable" path
// from spec.md §4.2/§7 without requiring cgo/GDAL to be present, and is useful for
// LocalCartesian/ENU-only callers and for tests.
type NullService struct{}

func (NullService) CreateFromEPSG(int) (Handle, bool)    { return nil, false }
func (NullService) CreateFromWKT(string) (Handle, bool)  { return nil, false }
