package geocoord

// AxisTransformMatrix returns the pure-rotation matrix that converts a point from the from
// up-axis convention to the to one, per spec.md §4.4.5. Only Y_UP and Z_UP exist, so there are
// exactly two non-trivial cases, both right-handed:
//
//	Z_UP -> Y_UP: (x, y, z) -> (x, z, -y)
//	Y_UP -> Z_UP: (x, y, z) -> (x, -z, y)
//
// Every entry is 0, 1, or -1, so the multiply that applies this matrix introduces no rounding
// beyond what the caller's own Vector3 components already carry.
func AxisTransformMatrix(from, to UpAxis) Matrix4 {
	if from == to {
		return Identity()
	}
	if from == ZUp && to == YUp {
		return matrix4FromColumns(
			Vector3{X: 1, Y: 0, Z: 0},
			Vector3{X: 0, Y: 0, Z: -1},
			Vector3{X: 0, Y: 1, Z: 0},
			Vector3{},
		)
	}
	// Y_UP -> Z_UP
	return matrix4FromColumns(
		Vector3{X: 1, Y: 0, Z: 0},
		Vector3{X: 0, Y: 0, Z: 1},
		Vector3{X: 0, Y: -1, Z: 0},
		Vector3{},
	)
}
