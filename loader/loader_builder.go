package loader

import "github.com/Carmen-Shannon/scenery/postprocess"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithPostProcess is an option builder that selects post-processing passes
// to run on every imported scene.
//
// Parameters:
//   - opts: bitmask of post-processing passes
//
// Returns:
//   - LoaderBuilderOption: a function that applies the post-process option to a loader
func WithPostProcess(opts postprocess.Options) LoaderBuilderOption {
	return func(l *loader) {
		l.postProcess = opts
	}
}

// WithImageData is an option builder that makes the loader read referenced
// image files into memory. Without it, images carry resolved paths only.
//
// Returns:
//   - LoaderBuilderOption: a function that enables image data loading on a loader
func WithImageData() LoaderBuilderOption {
	return func(l *loader) {
		l.loadImageData = true
	}
}

// WithWorkers is an option builder that sets the number of concurrent
// imports LoadAll may run. Values below one are ignored.
//
// Parameters:
//   - workers: the maximum number of concurrent imports
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker count to a loader
func WithWorkers(workers int) LoaderBuilderOption {
	return func(l *loader) {
		if workers > 0 {
			l.workers = workers
		}
	}
}

// WithProfiling is an option builder that enables stage timing logs for
// every import.
//
// Returns:
//   - LoaderBuilderOption: a function that enables profiling on a loader
func WithProfiling() LoaderBuilderOption {
	return func(l *loader) {
		l.profile = true
	}
}
