// Package loader imports 3D model files into renderer-agnostic scenes.
// The public Loader facade selects a format backend by file extension;
// currently glTF 2.0 is the only backend. Every import is a complete,
// synchronous pass over one file with no state shared between calls.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/scenery/postprocess"
	"github.com/Carmen-Shannon/scenery/scene"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	postProcess   postprocess.Options
	loadImageData bool
	profile       bool
	workers       int

	backend loaderBackend
}

// Loader defines the public-facing interface for importing 3D scenes.
// It abstracts the file format behind a generic backend selected by file
// extension. A Loader holds no cross-call state: every Load performs a full
// import and the caller owns the returned scene outright.
type Loader interface {
	// Load imports a scene from a model file.
	// The import runs synchronously on the calling goroutine.
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - *scene.Scene: the imported scene
	//   - error: error if loading fails
	Load(path string) (*scene.Scene, error)

	// LoadBytes imports a scene from an in-memory glTF document.
	//
	// Parameters:
	//   - data: glTF JSON data
	//   - baseDir: directory for resolving relative buffer and image URIs
	//
	// Returns:
	//   - *scene.Scene: the imported scene
	//   - error: error if loading fails
	LoadBytes(data []byte, baseDir string) (*scene.Scene, error)

	// LoadAll imports several files concurrently, one independent import per
	// file; no single file's pipeline is ever split across goroutines.
	// Results are returned in input order. If any import fails, the joined
	// errors are returned and the scenes are discarded.
	//
	// Parameters:
	//   - paths: the file paths to import
	//
	// Returns:
	//   - []*scene.Scene: the imported scenes, index-aligned with paths
	//   - error: the joined errors of all failed imports
	LoadAll(paths []string) ([]*scene.Scene, error)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type
// and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		workers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(l)
	}

	// The backend is built after options so they can configure its pipeline.
	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend(l.postProcess, l.loadImageData, l.profile)
	}

	return l
}

func (l *loader) Load(path string) (*scene.Scene, error) {
	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	s, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return s, nil
}

func (l *loader) LoadBytes(data []byte, baseDir string) (*scene.Scene, error) {
	s, err := l.backend.LoadBytes(data, baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	return s, nil
}

func (l *loader) LoadAll(paths []string) ([]*scene.Scene, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	pool := worker.NewDynamicWorkerPool(l.workers, max(len(paths), 1), time.Second)

	scenes := make([]*scene.Scene, len(paths))
	errs := make([]error, len(paths))

	// A WaitGroup provides the completion barrier; pool.Wait() blocks until
	// workers idle-exit, which is unsuitable for a one-shot batch.
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				s, err := l.Load(path)
				if err != nil {
					errs[i] = err
					return nil, err
				}
				scenes[i] = s
				return s, nil
			},
		})
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return scenes, nil
}

// resolveBackend selects an appropriate loader backend based on the file
// extension. Currently only glTF is supported; .glb resolves to the glTF
// backend, which reports the binary container as unsupported.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		return l.backend, nil
	default:
		return nil, unsupportedf("model format %q", ext)
	}
}
