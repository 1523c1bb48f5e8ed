package geocoord

// GeoReference is the caller-supplied geographic anchor for a LocalCartesian frame, or the
// OGR-derived anchor for EPSG/WKT (spec.md §3). It is ignored for ENU, which carries its own
// built-in reference.
type GeoReference struct {
	Lon, Lat, Height float64
	Datum            VerticalDatum
}

// IsZero reports whether g is the zero-value reference (lon, lat, height, and datum all at
// their zero value) — used during construction to decide whether a caller-supplied
// GeoReference for EPSG/WKT should be trusted verbatim or the variant's own origin should be
// projected instead, per spec.md §4.4.1.
func (g GeoReference) IsZero() bool {
	return g == GeoReference{}
}
