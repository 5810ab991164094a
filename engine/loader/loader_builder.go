package loader

import "github.com/umbra3d/umbra/engine/renderer"

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithRenderer is an option builder that attaches a Renderer to the Loader.
// With a renderer attached, loaded meshes are uploaded to the GPU
// immediately; without one they stay CPU-side.
//
// Parameters:
//   - r: the renderer to attach
//
// Returns:
//   - LoaderBuilderOption: a function that applies the renderer option to a loader
func WithRenderer(r renderer.Renderer) LoaderBuilderOption {
	return func(l *loader) {
		l.renderer = r
	}
}
