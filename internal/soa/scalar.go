package soa

// ScalarVec3 is a single joint's 3-component vector.
type ScalarVec3 [3]float32

// ScalarQuat is a single joint's quaternion (x, y, z, w).
type ScalarQuat [4]float32

// ScalarTransform is a single joint's local transform, extracted from one
// SoA lane.
type ScalarTransform struct {
	Translation ScalarVec3
	Rotation    ScalarQuat
	Scale       ScalarVec3
}

// ScalarIdentity returns the identity scalar transform.
func ScalarIdentity() ScalarTransform {
	return ScalarTransform{
		Rotation: ScalarQuat{0, 0, 0, 1},
		Scale:    ScalarVec3{1, 1, 1},
	}
}

// Mul multiplies two quaternions (a then b, i.e. rotation b applied in a's
// frame).
func (a ScalarQuat) Mul(b ScalarQuat) ScalarQuat {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return ScalarQuat{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// Rotate applies the quaternion rotation to v.
func (q ScalarQuat) Rotate(v ScalarVec3) ScalarVec3 {
	// t = 2 * cross(q.xyz, v); v' = v + q.w*t + cross(q.xyz, t)
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	tx := 2 * (qy*v[2] - qz*v[1])
	ty := 2 * (qz*v[0] - qx*v[2])
	tz := 2 * (qx*v[1] - qy*v[0])
	return ScalarVec3{
		v[0] + qw*tx + qy*tz - qz*ty,
		v[1] + qw*ty + qz*tx - qx*tz,
		v[2] + qw*tz + qx*ty - qy*tx,
	}
}

// Apply transforms point p: scale, rotate, then translate.
func (t ScalarTransform) Apply(p ScalarVec3) ScalarVec3 {
	scaled := ScalarVec3{p[0] * t.Scale[0], p[1] * t.Scale[1], p[2] * t.Scale[2]}
	rotated := t.Rotation.Rotate(scaled)
	return ScalarVec3{
		rotated[0] + t.Translation[0],
		rotated[1] + t.Translation[1],
		rotated[2] + t.Translation[2],
	}
}

// Combine composes parent with child so that Combine(p, c).Apply(v) matches
// p.Apply(c.Apply(v)) for rigid transforms. Non-uniform scale under
// rotation does not decompose back into TRS exactly; joint positions,
// which only need the translation chain, stay exact.
func Combine(parent, child ScalarTransform) ScalarTransform {
	return ScalarTransform{
		Translation: parent.Apply(child.Translation),
		Rotation:    parent.Rotation.Mul(child.Rotation),
		Scale: ScalarVec3{
			parent.Scale[0] * child.Scale[0],
			parent.Scale[1] * child.Scale[1],
			parent.Scale[2] * child.Scale[2],
		},
	}
}
