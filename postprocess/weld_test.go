package postprocess

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/scenery/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeldDeduplicatesInFirstSeenOrder(t *testing.T) {
	a, b, c := vtx(0, 0, 0), vtx(1, 0, 0), vtx(0, 1, 0)
	mesh := &scene.Mesh{Vertices: []scene.Vertex{a, b, a, c, b, a}}

	weldVertices(mesh)

	require.Equal(t, []scene.Vertex{a, b, c}, mesh.Vertices)
	assert.Equal(t, []uint32{0, 1, 0, 2, 1, 0}, mesh.Indices)
}

func TestWeldSkipsIndexedMeshes(t *testing.T) {
	mesh := &scene.Mesh{
		Vertices: []scene.Vertex{vtx(0, 0, 0), vtx(0, 0, 0)},
		Indices:  []uint32{0, 1, 0},
	}

	weldVertices(mesh)

	// Duplicates behind an existing index buffer are left alone.
	assert.Len(t, mesh.Vertices, 2)
	assert.Equal(t, []uint32{0, 1, 0}, mesh.Indices)
}

func TestWeldIsIdempotent(t *testing.T) {
	a, b := vtx(0, 0, 0), vtx(1, 0, 0)
	mesh := &scene.Mesh{Vertices: []scene.Vertex{a, b, a}}

	weldVertices(mesh)
	once := append([]uint32(nil), mesh.Indices...)
	vertsOnce := append([]scene.Vertex(nil), mesh.Vertices...)

	weldVertices(mesh)
	assert.Equal(t, once, mesh.Indices)
	assert.Equal(t, vertsOnce, mesh.Vertices)
}

func TestWeldEmptyMesh(t *testing.T) {
	mesh := &scene.Mesh{}
	weldVertices(mesh)
	assert.Nil(t, mesh.Indices)
}

func TestWeldComparesBitPatterns(t *testing.T) {
	t.Run("LSB difference keeps vertices apart", func(t *testing.T) {
		x := float32(1)
		xEps := math.Float32frombits(math.Float32bits(x) + 1)
		mesh := &scene.Mesh{Vertices: []scene.Vertex{vtx(x, 0, 0), vtx(xEps, 0, 0)}}

		weldVertices(mesh)
		assert.Len(t, mesh.Vertices, 2)
		assert.Equal(t, []uint32{0, 1}, mesh.Indices)
	})

	t.Run("distinct NaN payloads stay distinct", func(t *testing.T) {
		nan1 := math.Float32frombits(0x7FC00000)
		nan2 := math.Float32frombits(0x7FC00001)
		mesh := &scene.Mesh{Vertices: []scene.Vertex{vtx(nan1, 0, 0), vtx(nan2, 0, 0)}}

		weldVertices(mesh)
		assert.Len(t, mesh.Vertices, 2)
		assert.Equal(t, []uint32{0, 1}, mesh.Indices)
	})

	t.Run("identical NaN payloads weld", func(t *testing.T) {
		nan := math.Float32frombits(0x7FC00000)
		mesh := &scene.Mesh{Vertices: []scene.Vertex{vtx(nan, 0, 0), vtx(nan, 0, 0)}}

		weldVertices(mesh)
		assert.Len(t, mesh.Vertices, 1)
		assert.Equal(t, []uint32{0, 0}, mesh.Indices)
	})
}
