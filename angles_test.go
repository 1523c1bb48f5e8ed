package geocoord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLongitude(t *testing.T) {
	assert.InDelta(t, 0, normalizeLongitude(0), 1e-9)
	assert.InDelta(t, 179, normalizeLongitude(-181), 1e-9)
	assert.InDelta(t, -179, normalizeLongitude(181), 1e-9)
	assert.InDelta(t, 90, normalizeLongitude(90), 1e-9)
}

func TestClampLatitude(t *testing.T) {
	assert.InDelta(t, 0, clampLatitude(0), 1e-9)
	assert.InDelta(t, -89, clampLatitude(-91), 1e-9)
	assert.InDelta(t, 89, clampLatitude(91), 1e-9)
	assert.InDelta(t, 45, clampLatitude(45), 1e-9)
}
