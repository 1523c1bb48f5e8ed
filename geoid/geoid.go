// Package geoid provides the GeoidService collaborator interface (spec.md §4.3, §6) and a
// grid-file-backed implementation modeled on the EGM undulation grid lookup exercised by
// gnssgo's geoid test harness.
package geoid

import "strings"

// Model names a geoid model, case-insensitively parsed from configuration (spec.md §6).
type Model int

const (
	None Model = iota
	EGM84
	EGM96
	EGM2008
)

func (m Model) String() string {
	switch m {
	case EGM84:
		return "egm84"
	case EGM96:
		return "egm96"
	case EGM2008:
		return "egm2008"
	default:
		return "none"
	}
}

// ParseModel parses a geoid model name case-insensitively. Unrecognized names parse as None,
// mirroring this package's general policy of degrading rather than erroring (spec.md §7).
func ParseModel(name string) Model {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "egm84":
		return EGM84
	case "egm96":
		return EGM96
	case "egm2008":
		return EGM2008
	default:
		return None
	}
}

// Service is the GeoidService collaborator contract from spec.md §4.3/§6: given a model and a
// geographic point, return the geoid undulation N(lat, lon) in metres, or ok=false if the
// service is not initialized for that model or the lookup otherwise fails. A nil/unavailable
// lookup is a non-fatal signal to callers — never an error.
type Service interface {
	Initialize(model Model, dataPath string) bool
	IsInitialized(model Model) bool
	GeoidHeight(model Model, latDeg, lonDeg float64) (metres float64, ok bool)
}

// OrthometricToEllipsoidal converts an orthometric height to ellipsoidal height using
// h_ellipsoidal = h_orthometric + N(lat, lon), per spec.md §4.3. If svc is nil or the lookup
// fails, h passes through unchanged.
func OrthometricToEllipsoidal(svc Service, model Model, latDeg, lonDeg, h float64) float64 {
	n, ok := lookup(svc, model, latDeg, lonDeg)
	if !ok {
		return h
	}
	return h + n
}

// EllipsoidalToOrthometric converts an ellipsoidal height to orthometric height using
// h_orthometric = h_ellipsoidal − N(lat, lon), per spec.md §4.3. If svc is nil or the lookup
// fails, h passes through unchanged.
func EllipsoidalToOrthometric(svc Service, model Model, latDeg, lonDeg, h float64) float64 {
	n, ok := lookup(svc, model, latDeg, lonDeg)
	if !ok {
		return h
	}
	return h - n
}

func lookup(svc Service, model Model, latDeg, lonDeg float64) (float64, bool) {
	if svc == nil {
		return 0, false
	}
	return svc.GeoidHeight(model, latDeg, lonDeg)
}
