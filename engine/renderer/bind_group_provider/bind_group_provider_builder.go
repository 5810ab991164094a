package bind_group_provider

import (
	"github.com/umbra3d/umbra/common"
)

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithUniformBuffer stages a uniform buffer of the given byte size at a binding index.
// The Renderer allocates the actual GPU buffer during InitBindGroup.
//
// Parameters:
//   - binding: the binding index for this buffer
//   - size: the buffer size in bytes
//
// Returns:
//   - BindGroupProviderOption: a function that stages the uniform buffer
func WithUniformBuffer(binding int, size uint64) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.uniformSizes[binding] = size
	}
}

// WithTextureData stages RGBA pixel data for a texture binding.
// The Renderer creates and uploads the GPU texture during InitBindGroup.
//
// Parameters:
//   - binding: the binding index for this texture
//   - data: the staged pixel data
//
// Returns:
//   - BindGroupProviderOption: a function that stages the texture data
func WithTextureData(binding int, data *common.TextureStagingData) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.textureData[binding] = data
	}
}

// WithSamplerData stages sampler configuration for a sampler binding.
// The Renderer creates the GPU sampler during InitBindGroup.
//
// Parameters:
//   - binding: the binding index for this sampler
//   - data: the staged sampler configuration
//
// Returns:
//   - BindGroupProviderOption: a function that stages the sampler configuration
func WithSamplerData(binding int, data *common.SamplerStagingData) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.samplerData[binding] = data
	}
}
