package batch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ozz-skel-runtime/internal/skeleton"
	"ozz-skel-runtime/internal/soa"
)

func writeSkeleton(t *testing.T, path string, numJoints int) {
	t.Helper()
	parents := make([]int16, numJoints)
	names := skeleton.NewJointMap(numJoints)
	parents[0] = skeleton.NoParent
	for i := 1; i < numJoints; i++ {
		parents[i] = int16(i - 1)
	}
	for i := 0; i < numJoints; i++ {
		names.Insert(fmt.Sprintf("joint_%d", i), int16(i))
	}
	poses := make([]soa.Transform, (numJoints+3)/4)
	for i := range poses {
		poses[i] = soa.Identity()
	}

	var buf bytes.Buffer
	require.NoError(t, skeleton.New(poses, parents, names).Write(&buf))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestScanFindsArchives(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	writeSkeleton(t, filepath.Join(dir, "a.ozz"), 3)
	writeSkeleton(t, filepath.Join(dir, "sub", "b.ozz"), 5)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644))

	paths, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestRunMixedResults(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ozz")
	bad := filepath.Join(dir, "bad.ozz")
	writeSkeleton(t, good, 7)
	require.NoError(t, os.WriteFile(bad, []byte("not an archive"), 0o644))

	results := Run(4, []string{good, bad}, nil)
	require.Len(t, results, 2)

	assert.True(t, results[0].Ok())
	assert.Equal(t, 7, results[0].NumJoints)
	assert.Equal(t, good, results[0].Path)

	assert.False(t, results[1].Ok())
	assert.NotEmpty(t, results[1].Error)
}

func TestRunManyFilesKeepsOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 20; i++ {
		p := filepath.Join(dir, fmt.Sprintf("s%02d.ozz", i))
		writeSkeleton(t, p, i+1)
		paths = append(paths, p)
	}

	results := Run(8, paths, nil)
	require.Len(t, results, 20)
	for i, r := range results {
		assert.True(t, r.Ok(), "file %d: %s", i, r.Error)
		assert.Equal(t, i+1, r.NumJoints, "result order must match input order")
	}
}
