package geocoord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/liyq0307/3dtiles/geoid"
)

func TestGeoidConfig_ZeroValueIsDisabled(t *testing.T) {
	var cfg GeoidConfig
	assert.False(t, cfg.Enabled)
	assert.Equal(t, geoid.None, cfg.Model)
}
