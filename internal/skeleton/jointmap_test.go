package skeleton

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJointMapLookupBothDirections(t *testing.T) {
	m := NewJointMap(4)
	m.Insert("Hips", 0)
	m.Insert("Spine", 1)
	m.Insert("Head", 2)

	assert.Equal(t, 3, m.Len())

	idx, ok := m.IndexByName("Spine")
	require.True(t, ok)
	assert.Equal(t, int16(1), idx)

	name, ok := m.NameByIndex(2)
	require.True(t, ok)
	assert.Equal(t, "Head", name)

	_, ok = m.IndexByName("Tail")
	assert.False(t, ok)
	_, ok = m.NameByIndex(7)
	assert.False(t, ok)
	_, ok = m.NameByIndex(-1)
	assert.False(t, ok)
}

func TestJointMapInsertDisplacesOldPairs(t *testing.T) {
	m := NewJointMap(4)
	m.Insert("Hips", 0)
	m.Insert("Spine", 1)

	// Re-point the name at a new index: index 0 loses its name.
	m.Insert("Hips", 2)
	assert.Equal(t, 2, m.Len())
	idx, ok := m.IndexByName("Hips")
	require.True(t, ok)
	assert.Equal(t, int16(2), idx)
	_, ok = m.NameByIndex(0)
	assert.False(t, ok)

	// Re-point an index at a new name: the old name disappears.
	m.Insert("Pelvis", 2)
	idx, ok = m.IndexByName("Pelvis")
	require.True(t, ok)
	assert.Equal(t, int16(2), idx)
	_, ok = m.IndexByName("Hips")
	assert.False(t, ok)

	// Same pair twice is a no-op.
	m.Insert("Spine", 1)
	assert.Equal(t, 2, m.Len())
}

func TestJointMapGrowth(t *testing.T) {
	m := NewJointMap(0)
	const n = 300
	for i := 0; i < n; i++ {
		m.Insert(fmt.Sprintf("joint_%03d", i), int16(i))
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		idx, ok := m.IndexByName(fmt.Sprintf("joint_%03d", i))
		require.True(t, ok, "joint_%03d lost during growth", i)
		assert.Equal(t, int16(i), idx)
		name, ok := m.NameByIndex(int16(i))
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("joint_%03d", i), name)
	}
}

func TestJointMapEqual(t *testing.T) {
	a := NewJointMap(2)
	b := NewJointMap(8)
	a.Insert("Hips", 0)
	a.Insert("Spine", 1)
	b.Insert("Spine", 1)
	b.Insert("Hips", 0)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.Insert("Spine", 2)
	assert.False(t, a.Equal(b))
}
