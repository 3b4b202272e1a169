package loader

import (
	"github.com/Carmen-Shannon/scenery/postprocess"
	"github.com/Carmen-Shannon/scenery/scene"
)

// gltfLoaderBackendImpl is the implementation of gltfLoaderBackend.
type gltfLoaderBackendImpl struct {
	importer gltfImporter
}

// gltfLoaderBackend is a loaderBackend implementation for glTF files.
// It delegates to the gltfImporter for parsing and extraction.
type gltfLoaderBackend interface {
	loaderBackend
}

var _ gltfLoaderBackend = &gltfLoaderBackendImpl{}

// newGLTFLoaderBackend creates a new glTF loader backend.
//
// Parameters:
//   - postProcess: post-processing passes to run after assembly
//   - loadImageData: when true, referenced image files are read into memory
//   - profile: when true, stage timings are written to the log
//
// Returns:
//   - gltfLoaderBackend: the loader backend for glTF files
func newGLTFLoaderBackend(postProcess postprocess.Options, loadImageData, profile bool) gltfLoaderBackend {
	return &gltfLoaderBackendImpl{
		importer: newGLTFImporter(postProcess, loadImageData, profile),
	}
}

func (b *gltfLoaderBackendImpl) Load(path string) (*scene.Scene, error) {
	return b.importer.Import(path)
}

func (b *gltfLoaderBackendImpl) LoadBytes(data []byte, baseDir string) (*scene.Scene, error) {
	return b.importer.ImportBytes(data, baseDir)
}
