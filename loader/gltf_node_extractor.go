package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/scenery/common"
	"github.com/Carmen-Shannon/scenery/scene"
)

// gltfNodeExtractorImpl is the implementation of the gltfNodeExtractor interface.
type gltfNodeExtractorImpl struct {
	parser gltfParser
}

// gltfNodeExtractor defines the interface for extracting the node hierarchy
// from a parsed glTF document. Node transforms are converted from the
// document's column-major layout to row-major matrices.
type gltfNodeExtractor interface {
	// ExtractNodes extracts all nodes from the document.
	// Mesh references are remapped to flattened output mesh indices using
	// the mapping produced by the mesh extractor.
	//
	// Parameters:
	//   - meshOutputs: output mesh indices per source mesh
	//
	// Returns:
	//   - []scene.Node: all extracted nodes
	//   - error: error if extraction fails
	ExtractNodes(meshOutputs [][]int) ([]scene.Node, error)

	// ExtractRoots returns the root node indices of the default scene.
	// Falls back to the first scene when no default is set, and to nil when
	// the document has no scenes.
	//
	// Returns:
	//   - []int: root node indices
	//   - error: error if extraction fails
	ExtractRoots() ([]int, error)
}

var _ gltfNodeExtractor = &gltfNodeExtractorImpl{}

// newGLTFNodeExtractor creates a new node extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//
// Returns:
//   - gltfNodeExtractor: the node extractor
func newGLTFNodeExtractor(parser gltfParser) gltfNodeExtractor {
	return &gltfNodeExtractorImpl{parser: parser}
}

func (e *gltfNodeExtractorImpl) ExtractNodes(meshOutputs [][]int) ([]scene.Node, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, formatErrf("no document loaded")
	}
	if len(doc.Nodes) == 0 {
		return nil, nil
	}

	nodes := make([]scene.Node, len(doc.Nodes))
	for i := range doc.Nodes {
		src := &doc.Nodes[i]

		node := scene.Node{
			Name:      common.Coalesce(src.Name, fmt.Sprintf("node_%d", i)),
			Transform: nodeTransform(src),
			Children:  src.Children,
		}
		if src.Mesh != nil {
			node.Meshes = meshOutputs[*src.Mesh]
		}

		nodes[i] = node
	}

	return nodes, nil
}

func (e *gltfNodeExtractorImpl) ExtractRoots() ([]int, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, formatErrf("no document loaded")
	}
	if len(doc.Scenes) == 0 {
		return nil, nil
	}

	sceneIndex := 0
	if doc.Scene != nil {
		sceneIndex = *doc.Scene
	}

	return doc.Scenes[sceneIndex].Nodes, nil
}

// nodeTransform computes a node's local transform as a row-major matrix.
// An explicit matrix is transposed from the document's column-major layout;
// otherwise the translation, rotation, and scale components are composed,
// each falling back to its identity default.
func nodeTransform(node *gltfNode) [16]float32 {
	if node.Matrix != nil {
		return common.TransposeMat4(*node.Matrix)
	}
	return common.ComposeTRS(node.translation(), node.rotation(), node.scale())
}
