package geocoord

import (
	"fmt"
	"math"
)

// Matrix4 is a 4×4 homogeneous double-precision matrix stored column-major: element (row, col)
// lives at m[col*4+row]. This is the layout a 3D-Tiles tileset root "transform" array expects
// (translation in slots 12..14, a literal 1 in slot 15), per spec.md §4.4.6/§6.
//
// The convention throughout this package is left-multiplication: result = M · v.
type Matrix4 struct {
	m [16]float64
}

// Identity returns the 4×4 identity matrix.
func Identity() Matrix4 {
	var mat Matrix4
	mat.m[0], mat.m[5], mat.m[10], mat.m[15] = 1, 1, 1, 1
	return mat
}

// matrix4FromColumns builds a matrix whose first three columns are the given basis vectors
// and whose fourth column is (translation.X, translation.Y, translation.Z, 1) — the layout
// spec.md §4.4.6 describes as "[E | Nhat | U | (x0, y0, z0, 1)]".
func matrix4FromColumns(c0, c1, c2, translation Vector3) Matrix4 {
	var mat Matrix4
	mat.m[0], mat.m[1], mat.m[2], mat.m[3] = c0.X, c0.Y, c0.Z, 0
	mat.m[4], mat.m[5], mat.m[6], mat.m[7] = c1.X, c1.Y, c1.Z, 0
	mat.m[8], mat.m[9], mat.m[10], mat.m[11] = c2.X, c2.Y, c2.Z, 0
	mat.m[12], mat.m[13], mat.m[14], mat.m[15] = translation.X, translation.Y, translation.Z, 1
	return mat
}

// at returns element (row, col).
func (a Matrix4) at(row, col int) float64 {
	return a.m[col*4+row]
}

// Multiply returns a · b (a applied after b, i.e. (a·b)·v == a·(b·v)).
func (a Matrix4) Multiply(b Matrix4) Matrix4 {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += a.at(row, k) * b.at(k, col)
			}
			out.m[col*4+row] = sum
		}
	}
	return out
}

// MultiplyPoint returns M · (v.X, v.Y, v.Z, 1), dropping the homogeneous coordinate.
func (a Matrix4) MultiplyPoint(v Vector3) Vector3 {
	hv := [4]float64{v.X, v.Y, v.Z, 1}
	var out [4]float64
	for row := 0; row < 4; row++ {
		var sum float64
		for k := 0; k < 4; k++ {
			sum += a.at(row, k) * hv[k]
		}
		out[row] = sum
	}
	return Vector3{X: out[0], Y: out[1], Z: out[2]}
}

// Translation returns the matrix's translation column (slots 12..14) as a Vector3.
func (a Matrix4) Translation() Vector3 {
	return Vector3{X: a.m[12], Y: a.m[13], Z: a.m[14]}
}

// Array returns the 16-element column-major representation of a, ready to serialize as a
// 3D-Tiles root "transform" array (translation in slots 12..14, literal 1 in slot 15).
func (a Matrix4) Array() [16]float64 {
	return a.m
}

// Inverse returns the inverse of a via Gauss-Jordan elimination with partial pivoting. ok is
// false if a is singular (to working precision); callers working with a rigid ENU↔ECEF pair
// should never observe this, since that matrix is always orthonormal-plus-translation.
func (a Matrix4) Inverse() (Matrix4, bool) {
	// augmented[row] holds [a row 0..3 | identity row 0..3]
	var augmented [4][8]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			augmented[row][col] = a.at(row, col)
		}
		augmented[row][4+row] = 1
	}

	for pivot := 0; pivot < 4; pivot++ {
		// partial pivot: find largest magnitude in this column at/below pivot row
		maxRow := pivot
		maxVal := abs(augmented[pivot][pivot])
		for row := pivot + 1; row < 4; row++ {
			if v := abs(augmented[row][pivot]); v > maxVal {
				maxRow, maxVal = row, v
			}
		}
		if maxVal < 1e-15 {
			return Matrix4{}, false
		}
		augmented[pivot], augmented[maxRow] = augmented[maxRow], augmented[pivot]

		pivotVal := augmented[pivot][pivot]
		for col := 0; col < 8; col++ {
			augmented[pivot][col] /= pivotVal
		}

		for row := 0; row < 4; row++ {
			if row == pivot {
				continue
			}
			factor := augmented[row][pivot]
			if factor == 0 {
				continue
			}
			for col := 0; col < 8; col++ {
				augmented[row][col] -= factor * augmented[pivot][col]
			}
		}
	}

	var out Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.m[col*4+row] = augmented[row][4+col]
		}
	}
	return out, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// String renders the matrix row by row for debug output.
func (a Matrix4) String() string {
	return fmt.Sprintf("[[%g %g %g %g] [%g %g %g %g] [%g %g %g %g] [%g %g %g %g]]",
		a.at(0, 0), a.at(0, 1), a.at(0, 2), a.at(0, 3),
		a.at(1, 0), a.at(1, 1), a.at(1, 2), a.at(1, 3),
		a.at(2, 0), a.at(2, 1), a.at(2, 2), a.at(2, 3),
		a.at(3, 0), a.at(3, 1), a.at(3, 2), a.at(3, 3),
	)
}

// CalcEnuToEcefMatrix computes the rigid-body ENU-to-ECEF matrix at geographic origin
// (lonDeg, latDeg, heightM), per the canonical formula in spec.md §4.4.6.
func CalcEnuToEcefMatrix(lonDeg, latDeg, heightM float64) Matrix4 {
	lon := lonDeg * toRadians
	lat := latDeg * toRadians

	sinLat, cosLat := math.Sin(lat), math.Cos(lat)
	sinLon, cosLon := math.Sin(lon), math.Cos(lon)

	origin := CartographicToECEF(lonDeg, latDeg, heightM)

	east := Vector3{X: -sinLon, Y: cosLon, Z: 0}
	north := Vector3{X: -sinLat * cosLon, Y: -sinLat * sinLon, Z: cosLat}
	up := Vector3{X: cosLat * cosLon, Y: cosLat * sinLon, Z: sinLat}

	return matrix4FromColumns(east, north, up, origin)
}
