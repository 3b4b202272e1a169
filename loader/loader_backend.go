package loader

import "github.com/Carmen-Shannon/scenery/scene"

// loaderBackend defines the generic interface for importing scenes from
// model files. Concrete implementations (e.g., gltfLoaderBackend) handle
// format-specific details.
type loaderBackend interface {
	// Load performs a full scene import from the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *scene.Scene: the imported scene
	//   - error: error if loading fails
	Load(path string) (*scene.Scene, error)

	// LoadBytes imports a scene from an in-memory document.
	//
	// Parameters:
	//   - data: the raw document data
	//   - baseDir: directory for resolving relative resource URIs
	//
	// Returns:
	//   - *scene.Scene: the imported scene
	//   - error: error if loading fails
	LoadBytes(data []byte, baseDir string) (*scene.Scene, error)
}
