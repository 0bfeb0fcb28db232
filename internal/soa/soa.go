// Package soa defines the structure-of-arrays transform types consumed by
// the runtime. Four joints' worth of each component are packed together in
// a lane group so numeric code can process them vectorized.
package soa

import "ozz-skel-runtime/internal/archive"

// Float4 packs one component for four consecutive joints.
type Float4 [4]float32

// Vec3 is a 3-component vector for four joints.
type Vec3 struct {
	X, Y, Z Float4
}

// Quat is a quaternion for four joints (x, y, z, w).
type Quat struct {
	X, Y, Z, W Float4
}

// Transform holds the local translation, rotation and scale of four
// consecutive joints.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// Identity returns a transform whose four lanes are all the identity:
// zero translation, unit quaternion, unit scale. Used as the deterministic
// fill for padding lanes past the last real joint.
func Identity() Transform {
	one := Float4{1, 1, 1, 1}
	return Transform{
		Rotation: Quat{W: one},
		Scale:    Vec3{X: one, Y: one, Z: one},
	}
}

// ReadTransform decodes one SoA transform record: translation x/y/z lanes,
// rotation x/y/z/w lanes, then scale x/y/z lanes.
func ReadTransform(r *archive.Reader) (Transform, error) {
	var t Transform
	dst := [...]*Float4{
		&t.Translation.X, &t.Translation.Y, &t.Translation.Z,
		&t.Rotation.X, &t.Rotation.Y, &t.Rotation.Z, &t.Rotation.W,
		&t.Scale.X, &t.Scale.Y, &t.Scale.Z,
	}
	for _, d := range dst {
		v, err := r.ReadFloat4()
		if err != nil {
			return Transform{}, err
		}
		*d = Float4(v)
	}
	return t, nil
}

// WriteTransform encodes one SoA transform record in ReadTransform's order.
func WriteTransform(w *archive.Writer, t Transform) error {
	src := [...]Float4{
		t.Translation.X, t.Translation.Y, t.Translation.Z,
		t.Rotation.X, t.Rotation.Y, t.Rotation.Z, t.Rotation.W,
		t.Scale.X, t.Scale.Y, t.Scale.Z,
	}
	for _, s := range src {
		if err := w.WriteFloat4([4]float32(s)); err != nil {
			return err
		}
	}
	return nil
}

// Lane extracts the scalar transform of lane i (0..3).
func (t Transform) Lane(i int) ScalarTransform {
	return ScalarTransform{
		Translation: ScalarVec3{t.Translation.X[i], t.Translation.Y[i], t.Translation.Z[i]},
		Rotation:    ScalarQuat{t.Rotation.X[i], t.Rotation.Y[i], t.Rotation.Z[i], t.Rotation.W[i]},
		Scale:       ScalarVec3{t.Scale.X[i], t.Scale.Y[i], t.Scale.Z[i]},
	}
}

// SetLane stores a scalar transform into lane i (0..3).
func (t *Transform) SetLane(i int, s ScalarTransform) {
	t.Translation.X[i], t.Translation.Y[i], t.Translation.Z[i] = s.Translation[0], s.Translation[1], s.Translation[2]
	t.Rotation.X[i], t.Rotation.Y[i], t.Rotation.Z[i], t.Rotation.W[i] = s.Rotation[0], s.Rotation[1], s.Rotation[2], s.Rotation[3]
	t.Scale.X[i], t.Scale.Y[i], t.Scale.Z[i] = s.Scale[0], s.Scale[1], s.Scale[2]
}
