package geocoord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4_IdentityMultiplyPoint(t *testing.T) {
	p := Vector3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, p, Identity().MultiplyPoint(p))
}

func TestMatrix4_TranslationColumn(t *testing.T) {
	origin := Vector3{X: 10, Y: 20, Z: 30}
	m := matrix4FromColumns(
		Vector3{X: 1, Y: 0, Z: 0},
		Vector3{X: 0, Y: 1, Z: 0},
		Vector3{X: 0, Y: 0, Z: 1},
		origin,
	)
	assert.Equal(t, origin, m.Translation())
	assert.Equal(t, origin, m.MultiplyPoint(Vector3{}))
}

func TestMatrix4_InverseRoundTrips(t *testing.T) {
	m := CalcEnuToEcefMatrix(13.4, 52.5, 120)
	inv, ok := m.Inverse()
	assert.True(t, ok)

	p := Vector3{X: 5, Y: -3, Z: 17}
	roundTripped := inv.MultiplyPoint(m.MultiplyPoint(p))
	assert.InDelta(t, p.X, roundTripped.X, 1e-6)
	assert.InDelta(t, p.Y, roundTripped.Y, 1e-6)
	assert.InDelta(t, p.Z, roundTripped.Z, 1e-6)
}

func TestMatrix4_MultiplyIdentityIsNoOp(t *testing.T) {
	m := CalcEnuToEcefMatrix(0, 0, 0)
	assert.Equal(t, m.Array(), m.Multiply(Identity()).Array())
	assert.Equal(t, m.Array(), Identity().Multiply(m).Array())
}

func TestCalcEnuToEcefMatrix_OriginMatchesCartographicToECEF(t *testing.T) {
	lon, lat, height := 2.3, 48.8, 35.0
	m := CalcEnuToEcefMatrix(lon, lat, height)
	expected := CartographicToECEF(lon, lat, height)
	assert.Equal(t, expected, m.Translation())
}

func TestCalcEnuToEcefMatrix_AtEquatorPrimeMeridian(t *testing.T) {
	// At (0,0,0): east = (0,1,0), north = (0,0,1), up = (1,0,0).
	m := CalcEnuToEcefMatrix(0, 0, 0)

	east := m.MultiplyPoint(Vector3{X: 1}).Minus(m.Translation())
	north := m.MultiplyPoint(Vector3{Y: 1}).Minus(m.Translation())
	up := m.MultiplyPoint(Vector3{Z: 1}).Minus(m.Translation())

	assert.InDelta(t, 0, east.X, 1e-9)
	assert.InDelta(t, 1, east.Y, 1e-9)
	assert.InDelta(t, 0, east.Z, 1e-9)

	assert.InDelta(t, 0, north.X, 1e-9)
	assert.InDelta(t, 0, north.Y, 1e-9)
	assert.InDelta(t, 1, north.Z, 1e-9)

	assert.InDelta(t, 1, up.X, 1e-9)
	assert.InDelta(t, 0, up.Y, 1e-9)
	assert.InDelta(t, 0, up.Z, 1e-9)
}
