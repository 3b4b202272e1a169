// Package postprocess applies optional geometry passes to an assembled
// scene. Passes are selected with a bitmask and run in a fixed order:
// vertex welding first, then normal generation, so generated normals are
// computed over the welded topology.
package postprocess

import "github.com/Carmen-Shannon/scenery/scene"

// Options is a bitmask selecting post-processing passes.
type Options uint32

const (
	// None applies no passes; the scene is returned untouched.
	None Options = 0

	// GenerateIndices welds duplicate vertices and builds an index buffer
	// for meshes that do not already have one.
	GenerateIndices Options = 1

	// GenerateNormals computes smooth vertex normals for meshes whose
	// normals are absent.
	GenerateNormals Options = 2
)

// Has reports whether the given pass is selected.
func (o Options) Has(flag Options) bool {
	return o&flag != 0
}

// Apply runs the selected post-processing passes over every mesh in the
// scene, in place.
//
// Parameters:
//   - s: the scene to process
//   - opts: bitmask of passes to apply
func Apply(s *scene.Scene, opts Options) {
	if s == nil || opts == None {
		return
	}

	for i := range s.Meshes {
		mesh := &s.Meshes[i]
		if opts.Has(GenerateIndices) {
			weldVertices(mesh)
		}
		if opts.Has(GenerateNormals) {
			generateNormals(mesh)
		}
	}
}
