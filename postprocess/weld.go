package postprocess

import "github.com/Carmen-Shannon/scenery/scene"

// weldVertices deduplicates identical vertices into an index buffer,
// preserving first-seen order. Vertices are compared by the exact bit
// pattern of every field, so distinct NaN encodings remain distinct
// vertices. Meshes that already carry indices are left untouched, which
// makes the pass idempotent.
func weldVertices(mesh *scene.Mesh) {
	if mesh.Indices != nil || len(mesh.Vertices) == 0 {
		return
	}

	seen := make(map[string]uint32, len(mesh.Vertices))
	welded := make([]scene.Vertex, 0, len(mesh.Vertices))
	indices := make([]uint32, 0, len(mesh.Vertices))

	for i := range mesh.Vertices {
		key := string(mesh.Vertices[i].Marshal())
		idx, ok := seen[key]
		if !ok {
			idx = uint32(len(welded))
			seen[key] = idx
			welded = append(welded, mesh.Vertices[i])
		}
		indices = append(indices, idx)
	}

	mesh.Vertices = welded
	mesh.Indices = indices
}
