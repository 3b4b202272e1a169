// Package export flattens imported scenes for transfer across an external
// boundary. Optional references become fixed-width indices with an explicit
// sentinel, vertex and index data are exposed as contiguous byte runs, and
// packed scenes are held behind opaque handles with a single paired release.
package export

import (
	"github.com/Carmen-Shannon/scenery/common"
	"github.com/Carmen-Shannon/scenery/scene"
)

// NoRef marks an absent reference in flattened scene data. It is the
// maximum representable index, so it can never collide with a valid one.
const NoRef = ^uint32(0)

// Scene is the flattened form of a scene.Scene. All optional references are
// uint32 indices with NoRef as the absent value.
type Scene struct {
	Meshes    []Mesh
	Materials []Material
	Images    []Image
	Nodes     []Node
	Roots     []uint32
}

// Mesh is the flattened form of a scene.Mesh.
type Mesh struct {
	Name     string
	Vertices []scene.Vertex
	Indices  []uint32
	// Material is the index into Scene.Materials, or NoRef.
	Material uint32
}

// Material is the flattened form of a scene.Material. Texture fields are
// indices into Scene.Images, or NoRef.
type Material struct {
	Name              string
	BaseColor         [4]float32
	BaseColorTexture  uint32
	Metallic          float32
	MetallicTexture   uint32
	Roughness         float32
	RoughnessTexture  uint32
	NormalTexture     uint32
	NormalScale       float32
	OcclusionTexture  uint32
	OcclusionStrength float32
	EmissiveTexture   uint32
	EmissiveFactor    [3]float32
	AlphaMode         int32
	AlphaCutoff       float32
	DoubleSided       bool
}

// Image is the flattened form of a scene.Image.
type Image struct {
	Name   string
	Path   string
	Format int32
	Data   []byte
}

// Node is the flattened form of a scene.Node.
type Node struct {
	Name      string
	Meshes    []uint32
	Transform [16]float32
	Children  []uint32
}

// Pack flattens a scene into its boundary representation. The packed scene
// shares vertex and index storage with the input.
//
// Parameters:
//   - s: the scene to flatten
//
// Returns:
//   - *Scene: the flattened scene
func Pack(s *scene.Scene) *Scene {
	if s == nil {
		return nil
	}

	out := &Scene{
		Meshes:    make([]Mesh, len(s.Meshes)),
		Materials: make([]Material, len(s.Materials)),
		Images:    make([]Image, len(s.Images)),
		Nodes:     make([]Node, len(s.Nodes)),
		Roots:     refSlice(s.Roots),
	}

	for i, m := range s.Meshes {
		out.Meshes[i] = Mesh{
			Name:     m.Name,
			Vertices: m.Vertices,
			Indices:  m.Indices,
			Material: ref(m.Material),
		}
	}

	for i, m := range s.Materials {
		out.Materials[i] = Material{
			Name:              m.Name,
			BaseColor:         m.BaseColor,
			BaseColorTexture:  ref(m.BaseColorTexture),
			Metallic:          m.Metallic,
			MetallicTexture:   ref(m.MetallicTexture),
			Roughness:         m.Roughness,
			RoughnessTexture:  ref(m.RoughnessTexture),
			NormalTexture:     ref(m.NormalTexture),
			NormalScale:       m.NormalScale,
			OcclusionTexture:  ref(m.OcclusionTexture),
			OcclusionStrength: m.OcclusionStrength,
			EmissiveTexture:   ref(m.EmissiveTexture),
			EmissiveFactor:    m.EmissiveFactor,
			AlphaMode:         int32(m.AlphaMode),
			AlphaCutoff:       m.AlphaCutoff,
			DoubleSided:       m.DoubleSided,
		}
	}

	for i, img := range s.Images {
		out.Images[i] = Image{
			Name:   img.Name,
			Path:   img.Path,
			Format: int32(img.Format),
			Data:   img.Data,
		}
	}

	for i, n := range s.Nodes {
		out.Nodes[i] = Node{
			Name:      n.Name,
			Meshes:    refSlice(n.Meshes),
			Transform: n.Transform,
			Children:  refSlice(n.Children),
		}
	}

	return out
}

// VertexBytes returns a mesh's vertex data as one contiguous byte run in
// native memory layout, 64 bytes per vertex.
//
// Parameters:
//   - m: the flattened mesh
//
// Returns:
//   - []byte: the raw vertex data
func VertexBytes(m *Mesh) []byte {
	return common.SliceToBytes(m.Vertices)
}

// IndexBytes returns a mesh's index data as one contiguous byte run, four
// bytes per index. Returns nil for unindexed meshes.
//
// Parameters:
//   - m: the flattened mesh
//
// Returns:
//   - []byte: the raw index data
func IndexBytes(m *Mesh) []byte {
	if m.Indices == nil {
		return nil
	}
	return common.SliceToBytes(m.Indices)
}

// ref converts an optional signed index (-1 for absent) to its flattened form.
func ref(i int) uint32 {
	if i < 0 {
		return NoRef
	}
	return uint32(i)
}

// refSlice converts a slice of indices to flattened form.
func refSlice(in []int) []uint32 {
	if in == nil {
		return nil
	}
	out := make([]uint32, len(in))
	for i, v := range in {
		out[i] = ref(v)
	}
	return out
}
