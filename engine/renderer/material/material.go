package material

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/umbra3d/umbra/common"
	"github.com/umbra3d/umbra/engine/renderer/bind_group_provider"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	textures          map[int]*common.ImportedTexture
	samplers          map[int]*common.SamplerStagingData
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a render material: the set of textures and
// samplers a surface technique binds, plus the GPU bind group holding them.
//
// Texture references are set at load time and are read-only through this interface.
// The bind group provider is mutable so it can be configured after construction
// during GPU initialization.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Texture retrieves the texture reference at a binding index, or nil if none is set.
	//
	// Parameters:
	//   - binding: the binding index within the material's bind group
	//
	// Returns:
	//   - *common.ImportedTexture: the texture, or nil
	Texture(binding int) *common.ImportedTexture

	// Textures retrieves all texture references keyed by binding index.
	//
	// Returns:
	//   - map[int]*common.ImportedTexture: the textures keyed by binding index
	Textures() map[int]*common.ImportedTexture

	// SamplerData retrieves the sampler configuration at a binding index, or nil
	// for the default linear/repeat sampler.
	//
	// Parameters:
	//   - binding: the binding index within the material's bind group
	//
	// Returns:
	//   - *common.SamplerStagingData: the sampler configuration, or nil
	SamplerData(binding int) *common.SamplerStagingData

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)

	// Stage decodes every texture reference and builds a BindGroupProvider with the
	// decoded pixel data and sampler configuration staged at the matching bindings.
	// Sampler bindings are staged at texture binding + 1.
	//
	// Returns:
	//   - error: an error if any texture fails to decode
	Stage() error

	// Release releases the GPU resources held by this material's bind group provider.
	Release()
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - name: the material identifier
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(name string, options ...MaterialBuilderOption) Material {
	m := &material{
		name:     name,
		textures: make(map[int]*common.ImportedTexture),
		samplers: make(map[int]*common.SamplerStagingData),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Texture(binding int) *common.ImportedTexture {
	return m.textures[binding]
}

func (m *material) Textures() map[int]*common.ImportedTexture {
	return m.textures
}

func (m *material) SamplerData(binding int) *common.SamplerStagingData {
	return m.samplers[binding]
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}

func (m *material) Stage() error {
	opts := make([]bind_group_provider.BindGroupProviderOption, 0, len(m.textures)*2)
	for binding, tex := range m.textures {
		pixels, width, height, err := tex.Decode()
		if err != nil {
			return fmt.Errorf("material %s: %w", m.name, err)
		}
		opts = append(opts, bind_group_provider.WithTextureData(binding, &common.TextureStagingData{
			Pixels: pixels,
			Width:  width,
			Height: height,
		}))

		sampler := m.samplers[binding]
		if sampler == nil {
			sampler = DefaultSampler()
		}
		opts = append(opts, bind_group_provider.WithSamplerData(binding+1, sampler))
	}
	m.bindGroupProvider = bind_group_provider.NewBindGroupProvider(m.name+" material", opts...)
	return nil
}

func (m *material) Release() {
	if m.bindGroupProvider != nil {
		m.bindGroupProvider.Release()
		m.bindGroupProvider = nil
	}
}

// DefaultSampler returns the sampler configuration used when a texture binding
// has no override: linear filtering with repeat addressing.
//
// Returns:
//   - *common.SamplerStagingData: the default sampler configuration
func DefaultSampler() *common.SamplerStagingData {
	return &common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeRepeat,
		AddressModeV: wgpu.AddressModeRepeat,
		AddressModeW: wgpu.AddressModeRepeat,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
		MipmapFilter: wgpu.MipmapFilterModeLinear,
	}
}

// PointSampler returns a sampler configuration with nearest filtering and edge
// clamping, used for lookup textures like cell shading ramps where interpolation
// between discrete bands is unwanted.
//
// Returns:
//   - *common.SamplerStagingData: the point sampler configuration
func PointSampler() *common.SamplerStagingData {
	return &common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:    wgpu.FilterModeNearest,
		MinFilter:    wgpu.FilterModeNearest,
		MipmapFilter: wgpu.MipmapFilterModeNearest,
	}
}
