package soa

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ozz-skel-runtime/internal/archive"
)

func TestTransformRoundTrip(t *testing.T) {
	in := Identity()
	in.Translation.X = Float4{1, 2, 3, 4}
	in.Translation.Y = Float4{-1, 0.5, 0, 1e-6}
	in.Rotation.Z = Float4{0, 0.7071, 0, 0}
	in.Scale.Y = Float4{2, 2, 2, 2}

	var buf bytes.Buffer
	w, err := archive.NewWriter(&buf, "test", 1)
	require.NoError(t, err)
	require.NoError(t, WriteTransform(w, in))

	r, err := archive.Open(&buf)
	require.NoError(t, err)
	out, err := ReadTransform(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLaneExtractAndStore(t *testing.T) {
	tr := Identity()
	want := ScalarTransform{
		Translation: ScalarVec3{1, 2, 3},
		Rotation:    ScalarQuat{0, 0, 0.7071068, 0.7071068},
		Scale:       ScalarVec3{1, 1, 2},
	}
	tr.SetLane(2, want)

	assert.Equal(t, want, tr.Lane(2))
	// Other lanes keep identity.
	assert.Equal(t, ScalarIdentity(), tr.Lane(0))
	assert.Equal(t, ScalarIdentity(), tr.Lane(3))
}

func quatAxisAngle(x, y, z float32, angle float64) ScalarQuat {
	s := float32(math.Sin(angle / 2))
	return ScalarQuat{x * s, y * s, z * s, float32(math.Cos(angle / 2))}
}

func assertVec3Near(t *testing.T, want, got ScalarVec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5)
	}
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees around Z maps +X to +Y.
	q := quatAxisAngle(0, 0, 1, math.Pi/2)
	assertVec3Near(t, ScalarVec3{0, 1, 0}, q.Rotate(ScalarVec3{1, 0, 0}))
}

func TestApplyOrderIsScaleRotateTranslate(t *testing.T) {
	tr := ScalarTransform{
		Translation: ScalarVec3{10, 0, 0},
		Rotation:    quatAxisAngle(0, 0, 1, math.Pi/2),
		Scale:       ScalarVec3{2, 2, 2},
	}
	// (1,0,0) -> scale (2,0,0) -> rotate (0,2,0) -> translate (10,2,0)
	assertVec3Near(t, ScalarVec3{10, 2, 0}, tr.Apply(ScalarVec3{1, 0, 0}))
}

func TestCombineMatchesSequentialApplyForRigid(t *testing.T) {
	parent := ScalarTransform{
		Translation: ScalarVec3{1, 2, 3},
		Rotation:    quatAxisAngle(0, 1, 0, math.Pi/3),
		Scale:       ScalarVec3{1, 1, 1},
	}
	child := ScalarTransform{
		Translation: ScalarVec3{0, 1, 0},
		Rotation:    quatAxisAngle(1, 0, 0, math.Pi/5),
		Scale:       ScalarVec3{1, 1, 1},
	}
	p := ScalarVec3{0.3, -0.7, 1.1}
	assertVec3Near(t, parent.Apply(child.Apply(p)), Combine(parent, child).Apply(p))
}
