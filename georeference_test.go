package geocoord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoReference_IsZero(t *testing.T) {
	assert.True(t, GeoReference{}.IsZero())
	assert.False(t, GeoReference{Lon: 1}.IsZero())
	assert.False(t, GeoReference{Datum: Orthometric}.IsZero())
}
