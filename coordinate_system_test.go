package geocoord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnknown_IsZeroValueAndInvalid(t *testing.T) {
	var zero CoordinateSystem
	assert.Equal(t, Unknown(), zero)
	assert.False(t, zero.IsValid())
	assert.Equal(t, KindUnknown, zero.Kind())
}

func TestNewLocalCartesian_ZUp(t *testing.T) {
	cs := NewLocalCartesian(ZUp, RightHanded)
	assert.True(t, cs.IsValid())
	assert.Equal(t, KindLocalCartesian, cs.Kind())
	assert.Equal(t, ZUp, cs.GetUpAxis())
	assert.Equal(t, RightHanded, cs.GetHandedness())
	assert.False(t, cs.NeedsOGRTransform())
	assert.False(t, cs.HasBuiltinGeoReference())
	assert.Equal(t, Ellipsoidal, cs.GetVerticalDatum())
}

func TestNewLocalCartesian_LeftHandedIsRejected(t *testing.T) {
	cs := NewLocalCartesian(YUp, LeftHanded)
	assert.False(t, cs.IsValid())
	assert.Equal(t, KindLocalCartesian, cs.Kind())
}

func TestNewENU(t *testing.T) {
	cs := NewENU(13.4, 52.5, 35, 100, 200, 10)
	assert.True(t, cs.IsValid())
	assert.True(t, cs.HasBuiltinGeoReference())
	assert.False(t, cs.NeedsOGRTransform())
	assert.Equal(t, YUp, cs.GetUpAxis())
	assert.Equal(t, RightHanded, cs.GetHandedness())

	lon, lat, height, ok := cs.ENUBuiltinGeoReference()
	assert.True(t, ok)
	assert.Equal(t, 13.4, lon)
	assert.Equal(t, 52.5, lat)
	assert.Equal(t, 35.0, height)

	ox, oy, oz := cs.GetSourceOrigin()
	assert.Equal(t, 100.0, ox)
	assert.Equal(t, 200.0, oy)
	assert.Equal(t, 10.0, oz)

	assert.Equal(t, Ellipsoidal, cs.GetVerticalDatum())
}

func TestNewEPSG(t *testing.T) {
	cs := NewEPSG(27700, 1000, 2000, 5)
	assert.True(t, cs.IsValid())
	assert.True(t, cs.NeedsOGRTransform())

	code, ok := cs.EPSGCode()
	assert.True(t, ok)
	assert.Equal(t, 27700, code)

	_, ok = cs.WKT()
	assert.False(t, ok)

	assert.True(t, strings.Contains(cs.String(), "EPSG:27700"))
}

func TestNewWKT(t *testing.T) {
	cs := NewWKT(`GEOGCS["test"]`, 1, 2, 3)
	assert.True(t, cs.IsValid())
	assert.True(t, cs.NeedsOGRTransform())

	wkt, ok := cs.WKT()
	assert.True(t, ok)
	assert.Equal(t, `GEOGCS["test"]`, wkt)

	_, ok = cs.EPSGCode()
	assert.False(t, ok)
}

func TestSetVerticalDatum_EPSG(t *testing.T) {
	cs := NewEPSG(4978, 0, 0, 0)
	cs = cs.SetVerticalDatum(Orthometric)
	assert.Equal(t, Orthometric, cs.GetVerticalDatum())
}

func TestSetVerticalDatum_NoOpOnENU(t *testing.T) {
	cs := NewENU(0, 0, 0, 0, 0, 0)
	cs = cs.SetVerticalDatum(Orthometric)
	assert.Equal(t, Ellipsoidal, cs.GetVerticalDatum())
}

func TestSetVerticalDatum_NoOpOnLocalCartesian(t *testing.T) {
	cs := NewLocalCartesian(YUp, RightHanded)
	cs = cs.SetVerticalDatum(Orthometric)
	assert.Equal(t, Ellipsoidal, cs.GetVerticalDatum())
}

func TestNewENU_NormalizesOutOfRangeOrigin(t *testing.T) {
	cs := NewENU(185, 91, 0, 0, 0, 0)
	lon, lat, _, ok := cs.ENUBuiltinGeoReference()
	require.True(t, ok)
	assert.InDelta(t, -175, lon, 1e-9)
	assert.InDelta(t, 89, lat, 1e-9)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "LocalCartesian", KindLocalCartesian.String())
	assert.Equal(t, "ENU", KindENU.String())
	assert.Equal(t, "EPSG", KindEPSG.String())
	assert.Equal(t, "WKT", KindWKT.String())
	assert.Equal(t, "Unknown", KindUnknown.String())
}
