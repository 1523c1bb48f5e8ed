package projection

import "github.com/airbusgeo/godal"

// wgs84LongLatProj4 is the longitude-first, latitude-second WGS84 geographic CRS used as the
// transform target. Using a proj4 "+proj=longlat" definition (rather than "EPSG:4326", whose
// authority-declared axis order is latitude-first) guarantees the "traditional GIS order"
// output spec.md §4.2/§6 requires, regardless of the source CRS's declared axis order.
const wgs84LongLatProj4 = "+proj=longlat +datum=WGS84 +no_defs"

// GodalService is a Service backed by github.com/airbusgeo/godal, a cgo binding over
// GDAL/OGR — the external spatial-reference library the spec's NeedsOGRTransform path names.
type GodalService struct{}

// NewGodalService returns a GodalService. It has no state of its own; each CreateFromEPSG/
// CreateFromWKT call builds and owns an independent godal.Transform.
func NewGodalService() GodalService {
	return GodalService{}
}

func (GodalService) CreateFromEPSG(code int) (Handle, bool) {
	src, err := godal.NewSpatialRefFromEPSG(code)
	if err != nil {
		return nil, false
	}
	return newGodalHandle(src)
}

func (GodalService) CreateFromWKT(wkt string) (Handle, bool) {
	src, err := godal.NewSpatialRefFromWKT(wkt)
	if err != nil {
		return nil, false
	}
	return newGodalHandle(src)
}

func newGodalHandle(src *godal.SpatialRef) (Handle, bool) {
	dst, err := godal.NewSpatialRefFromProj4(wgs84LongLatProj4)
	if err != nil {
		src.Close()
		return nil, false
	}

	trn, err := godal.NewTransform(src, dst)
	if err != nil {
		src.Close()
		dst.Close()
		return nil, false
	}

	return &godalHandle{src: src, dst: dst, trn: trn}, true
}

// godalHandle owns three godal objects (source SpatialRef, target SpatialRef, and the
// Transform between them) and releases all three exactly once on Close, matching godal's own
// ownership discipline (SpatialRef.Close/Transform.Close are themselves idempotent no-ops on
// an already-closed handle).
type godalHandle struct {
	src *godal.SpatialRef
	dst *godal.SpatialRef
	trn *godal.Transform
}

func (h *godalHandle) Transform(x, y, z float64) (lonDeg, latDeg, heightM float64, err error) {
	xs := []float64{x}
	ys := []float64{y}
	zs := []float64{z}
	if err := h.trn.TransformEx(xs, ys, zs, nil); err != nil {
		return 0, 0, 0, err
	}
	return xs[0], ys[0], zs[0], nil
}

func (h *godalHandle) Close() {
	h.trn.Close()
	h.src.Close()
	h.dst.Close()
}
