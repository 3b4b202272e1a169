// Package scene defines the flat, renderer-agnostic output model produced by
// the importer: meshes with interleaved vertices, optional index arrays,
// materials, image references and node transforms. A Scene owns all of its
// data outright and keeps no references into the source document.
package scene

// Scene is the flattened result of one import.
type Scene struct {
	// Meshes holds one entry per source mesh primitive, in document order.
	Meshes []Mesh

	// Materials is the ordered material list referenced by Mesh.Material.
	// Nil when the document declared no materials.
	Materials []Material

	// Images is the ordered image list referenced by material texture slots.
	// Nil when the document declared no images.
	Images []Image

	// Nodes is the ordered node list with local transforms. Nil when the
	// document declared no nodes.
	Nodes []Node

	// Roots are indices into Nodes for the root nodes of the default scene.
	Roots []int
}

// Mesh is one drawable vertex set with an optional index array.
type Mesh struct {
	// Name identifies the mesh for debugging and tooling.
	Name string

	// Vertices is the interleaved vertex array.
	Vertices []Vertex

	// Indices is the u32 index array, or nil for an unindexed mesh.
	Indices []uint32

	// Material is an index into Scene.Materials (-1 when the primitive
	// referenced no material).
	Material int
}

// Node is a scene-graph entry with its local transform.
type Node struct {
	// Name identifies the node (may be empty).
	Name string

	// Meshes are indices into Scene.Meshes for the output meshes produced
	// from the source mesh this node referenced. Empty for mesh-less nodes.
	Meshes []int

	// Transform is the node's local transform in row-major order.
	Transform [16]float32

	// Children are indices into Scene.Nodes.
	Children []int
}
