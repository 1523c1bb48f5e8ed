package geoid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSyntheticGrid writes a tiny 2x2-degree-step grid covering -2..2 lat, 0..4 lon, so tests
// don't depend on real EGM data distribution.
func writeSyntheticGrid(t *testing.T, dir, name string) {
	t.Helper()
	content := "-2 0 2 2 3 3\n" +
		"1 2 3\n" +
		"4 5 6\n" +
		"7 8 9\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".grid"), []byte(content), 0o644))
}

func TestGridService_InitializeAndLookup(t *testing.T) {
	dir := t.TempDir()
	writeSyntheticGrid(t, dir, "egm96")

	svc := NewGridService()
	assert.False(t, svc.IsInitialized(EGM96))
	assert.True(t, svc.Initialize(EGM96, dir))
	assert.True(t, svc.IsInitialized(EGM96))

	// exact grid nodes should round-trip exactly
	v, ok := svc.GeoidHeight(EGM96, -2, 0)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, 1e-9)

	v, ok = svc.GeoidHeight(EGM96, 2, 4)
	require.True(t, ok)
	assert.InDelta(t, 9.0, v, 1e-9)

	// midpoint between two nodes on the same row interpolates linearly
	v, ok = svc.GeoidHeight(EGM96, -2, 1)
	require.True(t, ok)
	assert.InDelta(t, 1.5, v, 1e-9)
}

func TestGridService_UninitializedModelFails(t *testing.T) {
	svc := NewGridService()
	_, ok := svc.GeoidHeight(EGM2008, 0, 0)
	assert.False(t, ok)
}

func TestGridService_InitializeMissingFileFails(t *testing.T) {
	svc := NewGridService()
	assert.False(t, svc.Initialize(EGM96, t.TempDir()))
}

func TestGridService_InitializeNoneModelFails(t *testing.T) {
	svc := NewGridService()
	assert.False(t, svc.Initialize(None, t.TempDir()))
}

func TestGrid_LongitudeWrapsModulo360(t *testing.T) {
	dir := t.TempDir()
	writeSyntheticGrid(t, dir, "egm84")
	svc := NewGridService()
	require.True(t, svc.Initialize(EGM84, dir))

	v1, _ := svc.GeoidHeight(EGM84, -2, 0)
	v2, _ := svc.GeoidHeight(EGM84, -2, 360)
	assert.InDelta(t, v1, v2, 1e-9)
}
