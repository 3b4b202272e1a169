package postprocess

import (
	"github.com/chewxy/math32"

	"github.com/Carmen-Shannon/scenery/common"
	"github.com/Carmen-Shannon/scenery/scene"
)

// needsNormals reports whether a mesh's normals look absent. The probe is
// the first vertex: a normal shorter than 0.5 cannot be a valid unit normal,
// and a NaN component means no normal was ever written.
func needsNormals(mesh *scene.Mesh) bool {
	if len(mesh.Vertices) == 0 {
		return false
	}

	n := mesh.Vertices[0].Normal
	if math32.IsNaN(n[0]) || math32.IsNaN(n[1]) || math32.IsNaN(n[2]) {
		return true
	}
	return common.Length3(n) < 0.5
}

// generateNormals computes smooth vertex normals from triangle geometry for
// meshes whose normals are absent. Each triangle's face normal is the
// negated cross product of its two edges around the middle vertex, with
// length proportional to the triangle's area. Face normals accumulate onto
// the normals already in place, and every vertex normal is normalized at the
// end; vertices touched by no triangle keep a zero normal.
func generateNormals(mesh *scene.Mesh) {
	if !needsNormals(mesh) {
		return
	}

	vertices := mesh.Vertices
	n := uint32(len(vertices))

	visit := func(i0, i1, i2 uint32) {
		if i0 >= n || i1 >= n || i2 >= n {
			return
		}
		v1, v2, v3 := &vertices[i0], &vertices[i1], &vertices[i2]

		edge1 := common.Sub3(v1.Position, v2.Position)
		edge2 := common.Sub3(v3.Position, v2.Position)
		faceNormal := common.Scale3(common.Cross3(edge1, edge2), -1)

		v1.Normal = common.Add3(v1.Normal, faceNormal)
		v2.Normal = common.Add3(v2.Normal, faceNormal)
		v3.Normal = common.Add3(v3.Normal, faceNormal)
	}

	if mesh.Indices != nil {
		for i := 0; i+2 < len(mesh.Indices); i += 3 {
			visit(mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2])
		}
	} else {
		for i := uint32(0); i+2 < n; i += 3 {
			visit(i, i+1, i+2)
		}
	}

	for i := range vertices {
		vertices[i].Normal = common.Normalize3(vertices[i].Normal)
	}
}
