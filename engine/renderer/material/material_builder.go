package material

import (
	"github.com/umbra3d/umbra/common"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithTexture is an option builder that assigns a texture reference to a binding index.
//
// Parameters:
//   - binding: the binding index within the material's bind group
//   - tex: the imported texture data
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(binding int, tex *common.ImportedTexture) MaterialBuilderOption {
	return func(m *material) {
		m.textures[binding] = tex
	}
}

// WithTexturePath is an option builder that assigns an on-disk texture to a binding index.
//
// Parameters:
//   - binding: the binding index within the material's bind group
//   - path: the filesystem path of the image file
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexturePath(binding int, path string) MaterialBuilderOption {
	return func(m *material) {
		m.textures[binding] = &common.ImportedTexture{Path: path}
	}
}

// WithSamplerData is an option builder that overrides the sampler configuration
// for a texture binding. The sampler is staged at binding + 1.
//
// Parameters:
//   - binding: the texture binding index the sampler pairs with
//   - data: the sampler configuration
//
// Returns:
//   - MaterialBuilderOption: a function that applies the sampler option to a material
func WithSamplerData(binding int, data *common.SamplerStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.samplers[binding] = data
	}
}
