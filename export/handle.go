package export

import (
	"errors"
	"sync"

	"github.com/Carmen-Shannon/scenery/loader"
	"github.com/Carmen-Shannon/scenery/postprocess"
)

// Handle is an opaque reference to a packed scene. The scene and everything
// it transitively owns stay alive until the handle is released with Free.
type Handle uint64

// ErrInvalidHandle is returned when a handle is unknown or already released.
var ErrInvalidHandle = errors.New("export: invalid or released handle")

// Handle values are never reused, so a stale handle keeps failing with
// ErrInvalidHandle instead of silently aliasing another scene.
var (
	registryMu sync.RWMutex
	nextHandle Handle = 1
	registry          = map[Handle]*Scene{}
)

// Load imports a model file, packs the result, and registers it under a new
// handle. Every call performs a full import.
//
// Parameters:
//   - path: the file path to the model file
//   - flags: post-processing passes to run after assembly
//
// Returns:
//   - Handle: the handle owning the packed scene
//   - error: error if the import fails
func Load(path string, flags postprocess.Options) (Handle, error) {
	l := loader.NewLoader(loader.BackendTypeGLTF, loader.WithPostProcess(flags))

	s, err := l.Load(path)
	if err != nil {
		return 0, err
	}

	return Wrap(Pack(s)), nil
}

// Wrap registers an already-packed scene and returns its handle.
//
// Parameters:
//   - s: the packed scene to register
//
// Returns:
//   - Handle: the handle owning the packed scene
func Wrap(s *Scene) Handle {
	registryMu.Lock()
	defer registryMu.Unlock()

	h := nextHandle
	nextHandle++
	registry[h] = s
	return h
}

// View returns the packed scene behind a handle. The scene stays owned by
// the registry; callers must not retain it past Free.
//
// Parameters:
//   - h: the handle to look up
//
// Returns:
//   - *Scene: the packed scene
//   - error: ErrInvalidHandle if the handle is unknown or released
func View(h Handle) (*Scene, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := registry[h]
	if !ok {
		return nil, ErrInvalidHandle
	}
	return s, nil
}

// Free releases a handle and the packed scene it owns. Exactly one Free
// pairs with each handle; repeated or unknown releases report
// ErrInvalidHandle and change nothing.
//
// Parameters:
//   - h: the handle to release
//
// Returns:
//   - error: ErrInvalidHandle if the handle is unknown or already released
func Free(h Handle) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[h]; !ok {
		return ErrInvalidHandle
	}
	delete(registry, h)
	return nil
}
