package postprocess

import (
	"testing"

	"github.com/Carmen-Shannon/scenery/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vtx builds a vertex at the given position with zero normals.
func vtx(x, y, z float32) scene.Vertex {
	return scene.Vertex{Position: [3]float32{x, y, z}}
}

func TestOptionsHas(t *testing.T) {
	opts := GenerateIndices | GenerateNormals
	assert.True(t, opts.Has(GenerateIndices))
	assert.True(t, opts.Has(GenerateNormals))
	assert.False(t, None.Has(GenerateIndices))
	assert.False(t, GenerateIndices.Has(GenerateNormals))
}

func TestApplyNoneLeavesSceneUntouched(t *testing.T) {
	s := &scene.Scene{Meshes: []scene.Mesh{{
		Vertices: []scene.Vertex{vtx(0, 0, 0), vtx(1, 0, 0), vtx(0, 1, 0)},
	}}}

	Apply(s, None)
	assert.Nil(t, s.Meshes[0].Indices)
	assert.Equal(t, [3]float32{0, 0, 0}, s.Meshes[0].Vertices[0].Normal)
}

func TestApplyNilScene(t *testing.T) {
	assert.NotPanics(t, func() { Apply(nil, GenerateIndices|GenerateNormals) })
}

func TestApplyWeldsBeforeGeneratingNormals(t *testing.T) {
	// Two unindexed triangles sharing an edge: one in the z=0 plane, one in
	// the x=0 plane. After welding, the shared vertices receive the sum of
	// both face normals.
	s := &scene.Scene{Meshes: []scene.Mesh{{
		Vertices: []scene.Vertex{
			vtx(0, 0, 0), vtx(1, 0, 0), vtx(0, 1, 0),
			vtx(0, 0, 0), vtx(0, 1, 0), vtx(0, 0, 1),
		},
	}}}

	Apply(s, GenerateIndices|GenerateNormals)

	m := s.Meshes[0]
	require.Len(t, m.Vertices, 4)
	require.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)

	const sqrtHalf = 0.70710678
	assertNormal(t, m.Vertices[0].Normal, [3]float32{sqrtHalf, 0, sqrtHalf})
	assertNormal(t, m.Vertices[1].Normal, [3]float32{0, 0, 1})
	assertNormal(t, m.Vertices[2].Normal, [3]float32{sqrtHalf, 0, sqrtHalf})
	assertNormal(t, m.Vertices[3].Normal, [3]float32{1, 0, 0})
}

func assertNormal(t *testing.T, got, want [3]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d", i)
	}
}
