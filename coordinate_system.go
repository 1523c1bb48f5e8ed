package geocoord

import "fmt"

// Kind tags the variant held by a CoordinateSystem.
type Kind int

const (
	// KindUnknown is the bottom value produced by the zero-value CoordinateSystem.
	KindUnknown Kind = iota
	KindLocalCartesian
	KindENU
	KindEPSG
	KindWKT
)

func (k Kind) String() string {
	switch k {
	case KindLocalCartesian:
		return "LocalCartesian"
	case KindENU:
		return "ENU"
	case KindEPSG:
		return "EPSG"
	case KindWKT:
		return "WKT"
	default:
		return "Unknown"
	}
}

// UpAxis is the up direction of a LocalCartesian frame.
type UpAxis int

const (
	YUp UpAxis = iota
	ZUp
)

func (a UpAxis) String() string {
	if a == ZUp {
		return "Z_UP"
	}
	return "Y_UP"
}

// Handedness is the chirality of a LocalCartesian frame.
type Handedness int

const (
	RightHanded Handedness = iota
	LeftHanded
)

func (h Handedness) String() string {
	if h == LeftHanded {
		return "Left"
	}
	return "Right"
}

// VerticalDatum tags whether a height is measured above the ellipsoid or the geoid.
type VerticalDatum int

const (
	DatumUnknown VerticalDatum = iota
	Ellipsoidal
	Orthometric
)

func (d VerticalDatum) String() string {
	switch d {
	case Ellipsoidal:
		return "Ellipsoidal"
	case Orthometric:
		return "Orthometric"
	default:
		return "Unknown"
	}
}

// CoordinateSystem is an immutable tagged descriptor of a source coordinate system and its
// origin, per spec.md §3. Exactly one variant's fields are populated for any given Kind; the
// others are left at their zero value, except that NewENU also records an Ellipsoidal
// verticalDatum. Construction is always infallible — a zero-value
// CoordinateSystem is the well-defined "Unknown" bottom value, for which IsValid is false.
//
// CoordinateSystem is a plain value: copy it freely, there is nothing to tear down.
type CoordinateSystem struct {
	kind Kind

	// LocalCartesian
	upAxis     UpAxis
	handedness Handedness

	// ENU
	originLon, originLat, originHeight float64
	offsetX, offsetY, offsetZ          float64

	// EPSG / WKT
	epsgCode      int
	wkt           string
	originX       float64
	originY       float64
	originZ       float64
	verticalDatum VerticalDatum
}

// NewLocalCartesian builds a LocalCartesian CoordinateSystem with the given up axis and
// handedness. Left-handed frames are accepted by the data model (spec.md §9) but produce a
// CoordinateSystem that IsValid reports as false, since this engine does not support them.
func NewLocalCartesian(upAxis UpAxis, handedness Handedness) CoordinateSystem {
	return CoordinateSystem{
		kind:       KindLocalCartesian,
		upAxis:     upAxis,
		handedness: handedness,
	}
}

// NewENU builds an ENU CoordinateSystem: a tangent-plane frame centered at
// (originLon, originLat, originHeight) with an integer-metre SRSOrigin translation already
// baked into (offsetX, offsetY, offsetZ). originLon/originLat are normalized to
// -180..+180/-90..+90 before storage, so a source that reports e.g. a longitude of 185 is
// treated the same as one reporting -175.
func NewENU(originLon, originLat, originHeight, offsetX, offsetY, offsetZ float64) CoordinateSystem {
	return CoordinateSystem{
		kind:          KindENU,
		originLon:     normalizeLongitude(originLon),
		originLat:     clampLatitude(originLat),
		originHeight:  originHeight,
		offsetX:       offsetX,
		offsetY:       offsetY,
		offsetZ:       offsetZ,
		verticalDatum: Ellipsoidal,
	}
}

// NewEPSG builds an EPSG CoordinateSystem identified by an integer EPSG code, with a projected
// origin (originX, originY, originZ) in the units and axis order that code defines. Vertical
// datum defaults to Ellipsoidal; use SetVerticalDatum to change it.
func NewEPSG(code int, originX, originY, originZ float64) CoordinateSystem {
	return CoordinateSystem{
		kind:          KindEPSG,
		epsgCode:      code,
		originX:       originX,
		originY:       originY,
		originZ:       originZ,
		verticalDatum: Ellipsoidal,
	}
}

// NewWKT builds a WKT CoordinateSystem identified by its Well-Known Text, with a projected
// origin (originX, originY, originZ). Vertical datum defaults to Ellipsoidal.
func NewWKT(wkt string, originX, originY, originZ float64) CoordinateSystem {
	return CoordinateSystem{
		kind:          KindWKT,
		wkt:           wkt,
		originX:       originX,
		originY:       originY,
		originZ:       originZ,
		verticalDatum: Ellipsoidal,
	}
}

// Unknown returns the bottom CoordinateSystem value, for which IsValid is false. It is also
// the zero value of CoordinateSystem, so var cs CoordinateSystem already produces it.
func Unknown() CoordinateSystem {
	return CoordinateSystem{kind: KindUnknown}
}

// Kind returns the variant tag.
func (c CoordinateSystem) Kind() Kind { return c.kind }

// IsValid reports whether c is anything other than the Unknown bottom value. A LocalCartesian
// system built with LeftHanded handedness is also reported invalid: left-handed source frames
// are permitted by the data model (spec.md §9) but not supported by this engine, and IsValid is
// where that is reported: NewLocalCartesian and the CoordinateTransformer constructors do not
// check handedness, so a left-handed source is transformed exactly like a right-handed one.
func (c CoordinateSystem) IsValid() bool {
	if c.kind == KindUnknown {
		return false
	}
	if c.kind == KindLocalCartesian && c.handedness == LeftHanded {
		return false
	}
	return true
}

// NeedsOGRTransform reports whether producing WGS84 coordinates from c requires an external
// projection handle, per spec.md §3: true for EPSG and WKT, false otherwise.
func (c CoordinateSystem) NeedsOGRTransform() bool {
	return c.kind == KindEPSG || c.kind == KindWKT
}

// HasBuiltinGeoReference reports whether c carries its own geographic anchor, per spec.md §3:
// true only for ENU.
func (c CoordinateSystem) HasBuiltinGeoReference() bool {
	return c.kind == KindENU
}

// GetUpAxis returns the up axis: the variant's own value for LocalCartesian, Y_UP for every
// other (valid) variant, per spec.md §4.1.
func (c CoordinateSystem) GetUpAxis() UpAxis {
	if c.kind == KindLocalCartesian {
		return c.upAxis
	}
	return YUp
}

// GetHandedness returns the handedness: the variant's own value for LocalCartesian,
// RightHanded for every other (valid) variant, per spec.md §4.1.
func (c CoordinateSystem) GetHandedness() Handedness {
	if c.kind == KindLocalCartesian {
		return c.handedness
	}
	return RightHanded
}

// GetSourceOrigin returns (x, y, z) with variant-dependent meaning, per spec.md §4.1:
// the metric SRSOrigin offset for ENU, the projected origin for EPSG/WKT, and (0,0,0) for
// LocalCartesian and Unknown.
func (c CoordinateSystem) GetSourceOrigin() (x, y, z float64) {
	switch c.kind {
	case KindENU:
		return c.offsetX, c.offsetY, c.offsetZ
	case KindEPSG, KindWKT:
		return c.originX, c.originY, c.originZ
	default:
		return 0, 0, 0
	}
}

// EPSGCode returns the EPSG code and true if c is the EPSG variant.
func (c CoordinateSystem) EPSGCode() (int, bool) {
	if c.kind != KindEPSG {
		return 0, false
	}
	return c.epsgCode, true
}

// WKT returns the WKT string and true if c is the WKT variant.
func (c CoordinateSystem) WKT() (string, bool) {
	if c.kind != KindWKT {
		return "", false
	}
	return c.wkt, true
}

// ENUBuiltinGeoReference returns the ENU variant's built-in (lon, lat, height) anchor and true
// if c is the ENU variant.
func (c CoordinateSystem) ENUBuiltinGeoReference() (lon, lat, height float64, ok bool) {
	if c.kind != KindENU {
		return 0, 0, 0, false
	}
	return c.originLon, c.originLat, c.originHeight, true
}

// GetVerticalDatum returns the vertical datum tag. It is always Ellipsoidal for ENU and
// LocalCartesian (spec.md §3); for EPSG/WKT it is whatever was set at construction or by
// SetVerticalDatum.
func (c CoordinateSystem) GetVerticalDatum() VerticalDatum {
	switch c.kind {
	case KindENU, KindLocalCartesian:
		return Ellipsoidal
	default:
		return c.verticalDatum
	}
}

// SetVerticalDatum mutates the vertical datum tag on the EPSG/WKT variants and returns the
// updated value. Calling it on ENU or LocalCartesian is a no-op — those variants are always
// Ellipsoidal per spec.md §3 — and it returns c unchanged.
func (c CoordinateSystem) SetVerticalDatum(d VerticalDatum) CoordinateSystem {
	if c.kind == KindEPSG || c.kind == KindWKT {
		c.verticalDatum = d
	}
	return c
}

// String produces a human-readable debug form naming the variant and its parameters. For
// EPSG it contains the substring "EPSG:<code>", per spec.md §8.
func (c CoordinateSystem) String() string {
	switch c.kind {
	case KindLocalCartesian:
		return fmt.Sprintf("LocalCartesian{up=%s, handedness=%s}", c.upAxis, c.handedness)
	case KindENU:
		return fmt.Sprintf("ENU{origin=(%g,%g,%g), offset=(%g,%g,%g)}",
			c.originLon, c.originLat, c.originHeight, c.offsetX, c.offsetY, c.offsetZ)
	case KindEPSG:
		return fmt.Sprintf("EPSG:%d{origin=(%g,%g,%g), datum=%s}",
			c.epsgCode, c.originX, c.originY, c.originZ, c.verticalDatum)
	case KindWKT:
		return fmt.Sprintf("WKT{wkt=%q, origin=(%g,%g,%g), datum=%s}",
			c.wkt, c.originX, c.originY, c.originZ, c.verticalDatum)
	default:
		return "Unknown{}"
	}
}
