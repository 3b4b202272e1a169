package loader

import (
	"fmt"

	"github.com/Carmen-Shannon/scenery/postprocess"
	"github.com/Carmen-Shannon/scenery/profiler"
	"github.com/Carmen-Shannon/scenery/scene"
)

// gltfImporterImpl is the implementation of the gltfImporter interface.
type gltfImporterImpl struct {
	postProcess   postprocess.Options
	loadImageData bool
	profile       bool
}

// gltfImporter defines the interface for orchestrating a full glTF import.
// It combines the parser and all extractors to produce a complete Scene,
// then runs any configured post-processing passes. Each call builds its own
// parser, so imports share no state.
type gltfImporter interface {
	// Import loads a glTF file and assembles it into a Scene.
	//
	// Parameters:
	//   - path: the file path to the glTF file
	//
	// Returns:
	//   - *scene.Scene: the fully assembled scene
	//   - error: error if import fails
	Import(path string) (*scene.Scene, error)

	// ImportBytes assembles a Scene from in-memory glTF JSON.
	//
	// Parameters:
	//   - data: glTF JSON data
	//   - baseDir: directory for resolving relative buffer and image URIs
	//
	// Returns:
	//   - *scene.Scene: the fully assembled scene
	//   - error: error if import fails
	ImportBytes(data []byte, baseDir string) (*scene.Scene, error)
}

var _ gltfImporter = &gltfImporterImpl{}

// newGLTFImporter creates a new glTF importer.
//
// Parameters:
//   - postProcess: post-processing passes to run after assembly
//   - loadImageData: when true, referenced image files are read into memory
//   - profile: when true, stage timings are written to the log
//
// Returns:
//   - gltfImporter: the importer
func newGLTFImporter(postProcess postprocess.Options, loadImageData, profile bool) gltfImporter {
	return &gltfImporterImpl{
		postProcess:   postProcess,
		loadImageData: loadImageData,
		profile:       profile,
	}
}

func (imp *gltfImporterImpl) Import(path string) (*scene.Scene, error) {
	var prof *profiler.Profiler
	if imp.profile {
		prof = profiler.New(path)
		defer prof.Done()
	}

	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	prof.Mark("parse")

	return imp.assembleFromParser(parser, prof)
}

func (imp *gltfImporterImpl) ImportBytes(data []byte, baseDir string) (*scene.Scene, error) {
	var prof *profiler.Profiler
	if imp.profile {
		prof = profiler.New("memory")
		defer prof.Done()
	}

	parser := newGLTFParser()
	if err := parser.ParseBytes(data, baseDir); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	prof.Mark("parse")

	return imp.assembleFromParser(parser, prof)
}

// assembleFromParser assembles a Scene from a parser that has already loaded
// a document.
func (imp *gltfImporterImpl) assembleFromParser(parser gltfParser, prof *profiler.Profiler) (*scene.Scene, error) {
	doc := parser.Document()
	if doc == nil {
		return nil, formatErrf("no document after parsing")
	}

	meshExtractor := newGLTFMeshExtractor(parser)
	materialExtractor := newGLTFMaterialExtractor(parser, imp.loadImageData)
	nodeExtractor := newGLTFNodeExtractor(parser)

	meshes, meshOutputs, err := meshExtractor.ExtractAllMeshes()
	if err != nil {
		return nil, fmt.Errorf("mesh extraction failed: %w", err)
	}
	prof.Mark("meshes")

	materials, err := materialExtractor.ExtractAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("material extraction failed: %w", err)
	}

	images, err := materialExtractor.ExtractAllImages()
	if err != nil {
		return nil, fmt.Errorf("image extraction failed: %w", err)
	}
	prof.Mark("materials")

	nodes, err := nodeExtractor.ExtractNodes(meshOutputs)
	if err != nil {
		return nil, fmt.Errorf("node extraction failed: %w", err)
	}

	roots, err := nodeExtractor.ExtractRoots()
	if err != nil {
		return nil, fmt.Errorf("scene root extraction failed: %w", err)
	}
	prof.Mark("nodes")

	result := &scene.Scene{
		Meshes:    meshes,
		Materials: materials,
		Images:    images,
		Nodes:     nodes,
		Roots:     roots,
	}

	if imp.postProcess != postprocess.None {
		postprocess.Apply(result, imp.postProcess)
		prof.Mark("postprocess")
	}

	return result, nil
}
