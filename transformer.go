package geocoord

import (
	"github.com/sirupsen/logrus"

	"github.com/liyq0307/3dtiles/geoid"
	"github.com/liyq0307/3dtiles/projection"
)

// Mode selects which operations a CoordinateTransformer supports, per spec.md §4.4.1.
type Mode int

const (
	// ModeNone is built from a CoordinateSystem alone. ToLocalENU works for LocalCartesian
	// sources (it is a pass-through regardless of mode); every geo-reference-dependent
	// operation (ToECEF, ToWGS84, and ToLocalENU on ENU/EPSG/WKT sources) logs a warning and
	// returns its input unchanged.
	ModeNone Mode = iota
	// ModeWithGeoReference additionally resolves a geographic origin — from the ENU variant's
	// own built-in reference, a caller-supplied GeoReference, or an OGR-projected origin — and
	// caches the ENU<->ECEF matrix pair derived from it.
	ModeWithGeoReference
)

// CoordinateTransformer is the per-tile transform pipeline of spec.md §4.4: source coordinates
// -> WGS84 geographic -> ECEF -> local ENU, plus the up-axis rotation a 3D-Tiles
// exporter needs independently of any of that. It is built once per tile's CoordinateSystem and
// reused for every vertex.
//
// A CoordinateTransformer is not safe for concurrent use by multiple goroutines; callers that
// need that should go through the facade package instead.
type CoordinateTransformer struct {
	sourceCS CoordinateSystem
	mode     Mode

	geoOriginLon    float64
	geoOriginLat    float64
	geoOriginHeight float64
	enuToEcef       Matrix4
	ecefToEnu       Matrix4
	axisToYUp       Matrix4

	projHandle projection.Handle
	geoidCfg   GeoidConfig
	geoidSvc   geoid.Service

	log *logrus.Entry
}

// New builds a CoordinateTransformer with mode=None: only ConvertUpAxis, and ToLocalENU for a
// LocalCartesian source, are meaningful. logger may be nil, in which case a default
// logrus.Entry tagged component=geocoord is used.
func New(cs CoordinateSystem, logger *logrus.Entry) *CoordinateTransformer {
	return &CoordinateTransformer{
		sourceCS:  cs,
		mode:      ModeNone,
		enuToEcef: Identity(),
		ecefToEnu: Identity(),
		axisToYUp: AxisTransformMatrix(cs.GetUpAxis(), YUp),
		log:       defaultLogger(logger),
	}
}

// NewWithGeoReference builds a CoordinateTransformer with mode=WithGeoReference and geoid
// correction disabled. projSvc is consulted for the EPSG/WKT variants; it may be nil, which is
// treated the same as projection.NullService{}.
func NewWithGeoReference(cs CoordinateSystem, projSvc projection.Service, geoRef GeoReference, logger *logrus.Entry) *CoordinateTransformer {
	return newTransformer(cs, projSvc, nil, geoRef, GeoidConfig{}, logger)
}

// NewWithGeoid builds a CoordinateTransformer with mode=WithGeoReference and the given geoid
// correction policy (spec.md §4.4.2) already wired in. geoidSvc may be nil, which disables
// correction regardless of geoidCfg.Enabled.
func NewWithGeoid(cs CoordinateSystem, projSvc projection.Service, geoidSvc geoid.Service, geoRef GeoReference, geoidCfg GeoidConfig, logger *logrus.Entry) *CoordinateTransformer {
	return newTransformer(cs, projSvc, geoidSvc, geoRef, geoidCfg, logger)
}

func newTransformer(cs CoordinateSystem, projSvc projection.Service, geoidSvc geoid.Service, geoRef GeoReference, geoidCfg GeoidConfig, logger *logrus.Entry) *CoordinateTransformer {
	log := defaultLogger(logger)
	if projSvc == nil {
		projSvc = projection.NullService{}
	}

	lon, lat, height, handle := resolveOrigin(cs, geoRef, projSvc, geoidSvc, geoidCfg, log)

	enuToEcef := CalcEnuToEcefMatrix(lon, lat, height)
	ecefToEnu, ok := enuToEcef.Inverse()
	if !ok {
		// The ENU<->ECEF matrix is always orthonormal-plus-translation, so this should be
		// unreachable; fall back to identity rather than panic if it ever is.
		log.Error("ENU<->ECEF matrix was singular; falling back to identity")
		ecefToEnu = Identity()
	}

	return &CoordinateTransformer{
		sourceCS:        cs,
		mode:            ModeWithGeoReference,
		geoOriginLon:    lon,
		geoOriginLat:    lat,
		geoOriginHeight: height,
		enuToEcef:       enuToEcef,
		ecefToEnu:       ecefToEnu,
		axisToYUp:       AxisTransformMatrix(cs.GetUpAxis(), YUp),
		projHandle:      handle,
		geoidCfg:        geoidCfg,
		geoidSvc:        geoidSvc,
		log:             log,
	}
}

func defaultLogger(entry *logrus.Entry) *logrus.Entry {
	if entry != nil {
		return entry
	}
	return logrus.NewEntry(logrus.StandardLogger()).WithField("component", "geocoord")
}

// resolveOrigin implements the per-variant geographic-origin resolution table of spec.md
// §4.4.1. It never fails outright: when a projection handle cannot be built, or projecting the
// variant's own origin errors, it logs and falls back to the caller-supplied GeoReference (or
// the zero reference), leaving handle nil so downstream EPSG/WKT operations degrade to
// pass-through per §4.4.7.
func resolveOrigin(cs CoordinateSystem, geoRef GeoReference, projSvc projection.Service, geoidSvc geoid.Service, geoidCfg GeoidConfig, log *logrus.Entry) (lon, lat, height float64, handle projection.Handle) {
	switch cs.Kind() {
	case KindENU:
		lon, lat, height, _ := cs.ENUBuiltinGeoReference()
		return lon, lat, height, nil

	case KindLocalCartesian:
		return geoRef.Lon, geoRef.Lat, geoRef.Height, nil

	case KindEPSG, KindWKT:
		h, ok := createProjectionHandle(cs, projSvc)
		if !ok {
			log.Warn("projection handle creation failed; falling back to caller-supplied geo-reference")
			return geoRef.Lon, geoRef.Lat, geoRef.Height, nil
		}

		if !geoRef.IsZero() {
			height := geoRef.Height
			if shouldApplyGeoid(cs, geoidCfg, geoidSvc) {
				height = geoid.OrthometricToEllipsoidal(geoidSvc, geoidCfg.Model, geoRef.Lat, geoRef.Lon, height)
			}
			return geoRef.Lon, geoRef.Lat, height, h
		}

		ox, oy, oz := cs.GetSourceOrigin()
		projLon, projLat, projHeight, err := h.Transform(ox, oy, oz)
		if err != nil {
			log.WithError(err).Warn("projecting coordinate system origin failed; releasing projection handle")
			h.Close()
			return 0, 0, 0, nil
		}
		if shouldApplyGeoid(cs, geoidCfg, geoidSvc) {
			projHeight = geoid.OrthometricToEllipsoidal(geoidSvc, geoidCfg.Model, projLat, projLon, projHeight)
		}
		return projLon, projLat, projHeight, h

	default:
		return 0, 0, 0, nil
	}
}

func createProjectionHandle(cs CoordinateSystem, svc projection.Service) (projection.Handle, bool) {
	if code, ok := cs.EPSGCode(); ok {
		return svc.CreateFromEPSG(code)
	}
	if wkt, ok := cs.WKT(); ok {
		return svc.CreateFromWKT(wkt)
	}
	return nil, false
}

// shouldApplyGeoid implements the geoid-correction policy of spec.md §4.4.2: correction only
// ever applies to a source whose vertical datum could plausibly be orthometric, which — because
// GetVerticalDatum() is hard-wired to Ellipsoidal for ENU and LocalCartesian — already excludes
// those two variants without any variant-specific branch here.
func shouldApplyGeoid(cs CoordinateSystem, cfg GeoidConfig, svc geoid.Service) bool {
	if !cfg.Enabled || svc == nil || !svc.IsInitialized(cfg.Model) {
		return false
	}
	switch cs.GetVerticalDatum() {
	case Orthometric, DatumUnknown:
		return true
	default:
		return false
	}
}

// SourceCoordinateSystem returns the CoordinateSystem the transformer was built from.
func (t *CoordinateTransformer) SourceCoordinateSystem() CoordinateSystem { return t.sourceCS }

// Mode returns the transformer's mode.
func (t *CoordinateTransformer) Mode() Mode { return t.mode }

// GeoOrigin returns the resolved geographic origin (lon, lat, height) used to build the
// ENU<->ECEF matrix pair. It is the zero triple when Mode is ModeNone.
func (t *CoordinateTransformer) GeoOrigin() (lon, lat, height float64) {
	return t.geoOriginLon, t.geoOriginLat, t.geoOriginHeight
}

// EnuToEcefMatrix returns the cached rigid-body transform from local ENU to ECEF at the
// resolved geographic origin, suitable for use as (or folding into) a 3D-Tiles tileset root
// "transform" array, per spec.md §4.4.6.
func (t *CoordinateTransformer) EnuToEcefMatrix() Matrix4 { return t.enuToEcef }

// EnableGeoidCorrection turns geoid correction on or off at runtime without rebuilding the
// transformer, per spec.md §4.4.2.
func (t *CoordinateTransformer) EnableGeoidCorrection(enabled bool) {
	t.geoidCfg.Enabled = enabled
}

// Close releases the transformer's projection handle, if any. Safe to call more than once, and
// safe to call on a transformer with no handle (LocalCartesian/ENU sources, or mode=None).
func (t *CoordinateTransformer) Close() {
	if t.projHandle != nil {
		t.projHandle.Close()
		t.projHandle = nil
	}
}

// ToLocalENU converts a point from the transformer's source coordinate system into the tile's
// local ENU frame, per spec.md §4.4.3. LocalCartesian is a pass-through in every mode — per
// invariant (spec.md §8) it returns p unchanged for any geo-reference, since such a point is by
// definition already expressed in local coordinates. Every other variant requires
// mode=WithGeoReference; called with mode=None, it logs a warning and returns p unchanged.
func (t *CoordinateTransformer) ToLocalENU(p Vector3) Vector3 {
	if t.sourceCS.Kind() == KindLocalCartesian {
		return p
	}
	if t.mode == ModeNone {
		t.warnModeNone("ToLocalENU")
		return p
	}
	ecef, ok := t.toECEFVariant(p)
	if !ok {
		return p
	}
	return t.ecefToEnu.MultiplyPoint(ecef)
}

// ToECEF converts a point from the transformer's source coordinate system directly into ECEF,
// per spec.md §4.4.4 — the same pipeline as ToLocalENU without the final ecef_to_enu multiply.
// Unlike ToLocalENU, this always requires mode=WithGeoReference, including for LocalCartesian:
// embedding a local point into ECEF is meaningless without a resolved geographic origin.
func (t *CoordinateTransformer) ToECEF(p Vector3) Vector3 {
	if t.mode == ModeNone {
		t.warnModeNone("ToECEF")
		return p
	}
	ecef, _ := t.toECEFVariant(p)
	return ecef
}

// toECEFVariant applies the source variant's own algorithm to reach ECEF, per spec.md §4.4.3/
// §4.4.4, with no mode check — callers are responsible for that. ok is false when an EPSG/WKT
// point could not be projected; the returned point is then p itself.
func (t *CoordinateTransformer) toECEFVariant(p Vector3) (ecef Vector3, ok bool) {
	switch t.sourceCS.Kind() {
	case KindLocalCartesian:
		return t.enuToEcef.MultiplyPoint(p), true

	case KindENU:
		ox, oy, oz := t.sourceCS.GetSourceOrigin()
		return t.enuToEcef.MultiplyPoint(p.Plus(Vector3{X: ox, Y: oy, Z: oz})), true

	case KindEPSG, KindWKT:
		ox, oy, oz := t.sourceCS.GetSourceOrigin()
		shifted := p.Plus(Vector3{X: ox, Y: oy, Z: oz})

		if t.projHandle == nil {
			t.log.Warn("projection handle unavailable; EPSG/WKT point passes through unchanged")
			return p, false
		}
		lon, lat, h, err := t.projHandle.Transform(shifted.X, shifted.Y, shifted.Z)
		if err != nil {
			t.log.WithError(err).Warn("projection transform failed; point passes through unchanged")
			return p, false
		}
		h = t.applyGeoidCorrection(lat, lon, h)
		return CartographicToECEF(lon, lat, h), true

	default:
		return p, true
	}
}

// ToWGS84 converts a point from the transformer's source coordinate system into WGS84
// geographic coordinates (lonDeg, latDeg, heightM), per spec.md §4.4.4. Like ToECEF, it always
// requires mode=WithGeoReference.
//
// For ENU and LocalCartesian sources there is no real inverse geodesy in this engine (spec.md
// §9 Non-goals exclude an ECEF-to-WGS84 inverse): both return an approximation of
// (geo_origin_lon, geo_origin_lat, geo_origin_height + p.Z), treating the tile's vertical axis
// as a direct offset from the origin's height. This is accurate only very near the origin and
// is documented in DESIGN.md as an intentional, bounded-accuracy shortcut rather than a bug.
func (t *CoordinateTransformer) ToWGS84(p Vector3) (lonDeg, latDeg, heightM float64) {
	if t.mode == ModeNone {
		t.warnModeNone("ToWGS84")
		return p.X, p.Y, p.Z
	}

	switch t.sourceCS.Kind() {
	case KindENU, KindLocalCartesian:
		return t.geoOriginLon, t.geoOriginLat, t.geoOriginHeight + p.Z

	case KindEPSG, KindWKT:
		ox, oy, oz := t.sourceCS.GetSourceOrigin()
		shifted := p.Plus(Vector3{X: ox, Y: oy, Z: oz})

		if t.projHandle == nil {
			t.log.Warn("projection handle unavailable; EPSG/WKT point passes through unchanged")
			return p.X, p.Y, p.Z
		}
		lon, lat, h, err := t.projHandle.Transform(shifted.X, shifted.Y, shifted.Z)
		if err != nil {
			t.log.WithError(err).Warn("projection transform failed; point passes through unchanged")
			return p.X, p.Y, p.Z
		}
		h = t.applyGeoidCorrection(lat, lon, h)
		return lon, lat, h

	default:
		return p.X, p.Y, p.Z
	}
}

func (t *CoordinateTransformer) applyGeoidCorrection(latDeg, lonDeg, h float64) float64 {
	if !shouldApplyGeoid(t.sourceCS, t.geoidCfg, t.geoidSvc) {
		return h
	}
	return geoid.OrthometricToEllipsoidal(t.geoidSvc, t.geoidCfg.Model, latDeg, lonDeg, h)
}

// ConvertUpAxis applies the pure rotation of spec.md §4.4.5 between the source coordinate
// system's own up axis and toAxis. It needs no geo-reference and works in every mode.
func (t *CoordinateTransformer) ConvertUpAxis(p Vector3, toAxis UpAxis) Vector3 {
	from := t.sourceCS.GetUpAxis()
	if from == toAxis {
		return p
	}
	if toAxis == YUp {
		return t.axisToYUp.MultiplyPoint(p)
	}
	return AxisTransformMatrix(from, toAxis).MultiplyPoint(p)
}

// TransformBatch runs ToLocalENU over every point in points in place, for the common case of
// transforming an entire tile's vertex buffer in one call.
func (t *CoordinateTransformer) TransformBatch(points []Vector3) {
	for i := range points {
		points[i] = t.ToLocalENU(points[i])
	}
}

func (t *CoordinateTransformer) warnModeNone(op string) {
	t.log.WithField("op", op).Warn("geo-reference operation called on a mode=None transformer; returning input unchanged")
}
