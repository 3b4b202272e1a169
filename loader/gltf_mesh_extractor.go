package loader

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/scenery/common"
	"github.com/Carmen-Shannon/scenery/scene"
)

// gltfMeshExtractorImpl is the implementation of the gltfMeshExtractor interface.
type gltfMeshExtractorImpl struct {
	parser gltfParser
}

// gltfMeshExtractor defines the interface for extracting mesh data from a
// parsed glTF document. It converts raw glTF accessor data into scene-ready
// Mesh values, one per primitive.
type gltfMeshExtractor interface {
	// ExtractMesh extracts a single mesh by index.
	// Returns one Mesh per primitive (glTF meshes can have multiple primitives).
	//
	// Parameters:
	//   - meshIndex: the index of the mesh to extract
	//
	// Returns:
	//   - []scene.Mesh: one Mesh per primitive
	//   - error: error if extraction fails
	ExtractMesh(meshIndex int) ([]scene.Mesh, error)

	// ExtractAllMeshes extracts all meshes from the document.
	// Returns a flattened slice with one Mesh per primitive across all
	// meshes, plus a mapping from each source mesh index to the indices of
	// its flattened output meshes.
	//
	// Returns:
	//   - []scene.Mesh: all meshes (flattened, one per primitive)
	//   - [][]int: output mesh indices per source mesh
	//   - error: error if extraction fails
	ExtractAllMeshes() ([]scene.Mesh, [][]int, error)
}

var _ gltfMeshExtractor = &gltfMeshExtractorImpl{}

// newGLTFMeshExtractor creates a new mesh extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//
// Returns:
//   - gltfMeshExtractor: the mesh extractor
func newGLTFMeshExtractor(parser gltfParser) gltfMeshExtractor {
	return &gltfMeshExtractorImpl{parser: parser}
}

func (e *gltfMeshExtractorImpl) ExtractMesh(meshIndex int) ([]scene.Mesh, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, formatErrf("no document loaded")
	}
	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, formatErrf("mesh index %d out of range (%d meshes)", meshIndex, len(doc.Meshes))
	}

	mesh := &doc.Meshes[meshIndex]
	result := make([]scene.Mesh, 0, len(mesh.Primitives))

	for primIdx := range mesh.Primitives {
		prim := &mesh.Primitives[primIdx]
		extracted, err := e.extractPrimitive(prim, mesh.Name, meshIndex, primIdx)
		if err != nil {
			return nil, fmt.Errorf("mesh %d primitive %d: %w", meshIndex, primIdx, err)
		}
		result = append(result, *extracted)
	}

	return result, nil
}

func (e *gltfMeshExtractorImpl) ExtractAllMeshes() ([]scene.Mesh, [][]int, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, nil, formatErrf("no document loaded")
	}

	var allMeshes []scene.Mesh
	outputs := make([][]int, len(doc.Meshes))

	for i := range doc.Meshes {
		meshes, err := e.ExtractMesh(i)
		if err != nil {
			return nil, nil, err
		}
		base := len(allMeshes)
		for j := range meshes {
			outputs[i] = append(outputs[i], base+j)
		}
		allMeshes = append(allMeshes, meshes...)
	}

	return allMeshes, outputs, nil
}

// extractPrimitive extracts a single primitive as a Mesh. Vertices are
// index-aligned with the POSITION accessor; NORMAL and TEXCOORD_0 are
// optional and default to zero vectors. Color is fixed opaque white and
// tangents are fixed zero.
func (e *gltfMeshExtractorImpl) extractPrimitive(prim *gltfPrimitive, meshName string, meshIndex, primIndex int) (*scene.Mesh, error) {
	if mode := prim.mode(); mode != gltfPrimitiveModeTriangles {
		return nil, unsupportedf("primitive mode %d (only triangles supported)", mode)
	}

	// Attribute semantics match case-insensitively; unrecognized semantics
	// are skipped. Any UV set beyond the first is unsupported.
	posAccessor, normalAccessor, texCoordAccessor := -1, -1, -1
	for semantic, accIdx := range prim.Attributes {
		switch {
		case strings.EqualFold(semantic, "POSITION"):
			posAccessor = accIdx
		case strings.EqualFold(semantic, "NORMAL"):
			normalAccessor = accIdx
		case strings.EqualFold(semantic, "TEXCOORD_0"):
			texCoordAccessor = accIdx
		default:
			upper := strings.ToUpper(semantic)
			if strings.HasPrefix(upper, "TEXCOORD_") {
				return nil, unsupportedf("multiple UV sets (attribute %q)", semantic)
			}
		}
	}

	if posAccessor < 0 {
		return nil, formatErrf("missing required attribute %q", "POSITION")
	}

	positions, err := e.parser.ReadVec3Accessor(posAccessor)
	if err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}

	vertexCount := len(positions)
	vertices := make([]scene.Vertex, vertexCount)
	for i, pos := range positions {
		vertices[i].Position = pos
		vertices[i].Color = [4]float32{1, 1, 1, 1}
	}

	if normalAccessor >= 0 {
		normals, err := e.parser.ReadVec3Accessor(normalAccessor)
		if err != nil {
			return nil, fmt.Errorf("failed to read normals: %w", err)
		}
		if len(normals) != vertexCount {
			return nil, formatErrf("NORMAL count %d does not match POSITION count %d", len(normals), vertexCount)
		}
		for i, n := range normals {
			vertices[i].Normal = n
		}
	}

	if texCoordAccessor >= 0 {
		texCoords, err := e.parser.ReadVec2Accessor(texCoordAccessor)
		if err != nil {
			return nil, fmt.Errorf("failed to read texcoords: %w", err)
		}
		if len(texCoords) != vertexCount {
			return nil, formatErrf("TEXCOORD_0 count %d does not match POSITION count %d", len(texCoords), vertexCount)
		}
		for i, uv := range texCoords {
			vertices[i].TexCoord = uv
		}
	}

	// Indices stay nil for unindexed primitives; index generation is a
	// post-processing concern.
	var indices []uint32
	if prim.Indices != nil {
		indices, err = e.parser.ReadIndicesAccessor(*prim.Indices)
		if err != nil {
			return nil, fmt.Errorf("failed to read indices: %w", err)
		}
		for i, idx := range indices {
			if idx >= uint32(vertexCount) {
				return nil, formatErrf("index %d at element %d out of range (%d vertices)", idx, i, vertexCount)
			}
		}
	}

	materialIndex := -1
	if prim.Material != nil {
		materialIndex = *prim.Material
	}

	name := common.Coalesce(meshName, fmt.Sprintf("mesh_%d", meshIndex))
	if primIndex > 0 {
		name = fmt.Sprintf("%s_prim%d", name, primIndex)
	}

	return &scene.Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
		Material: materialIndex,
	}, nil
}
