package scene

import "github.com/cogentcore/webgpu/wgpu"

// FrameBindGroupLayout returns the layout descriptor for the main-pass frame
// group: the frame constants uniform, one shadow map per light, and the
// shadow comparison sampler. Must mirror the @group(0) declarations in every
// main-pass shader.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the frame group layout
func FrameBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	entries := []wgpu.BindGroupLayoutEntry{
		{
			Binding:    FrameBindingConstants,
			Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type:           wgpu.BufferBindingTypeUniform,
				MinBindingSize: FrameConstantsSize,
			},
		},
	}
	for i := 0; i < MaxLights; i++ {
		entries = append(entries, wgpu.BindGroupLayoutEntry{
			Binding:    uint32(FrameBindingShadowMapBase + i),
			Visibility: wgpu.ShaderStageFragment,
			Texture: wgpu.TextureBindingLayout{
				SampleType:    wgpu.TextureSampleTypeDepth,
				ViewDimension: wgpu.TextureViewDimension2D,
			},
		})
	}
	entries = append(entries, wgpu.BindGroupLayoutEntry{
		Binding:    uint32(FrameBindingShadowSampler),
		Visibility: wgpu.ShaderStageFragment,
		Sampler: wgpu.SamplerBindingLayout{
			Type: wgpu.SamplerBindingTypeComparison,
		},
	})
	return wgpu.BindGroupLayoutDescriptor{
		Label:   "frame bind group layout",
		Entries: entries,
	}
}

// DepthFrameBindGroupLayout returns the layout descriptor for the depth-pass
// frame group: a single uniform holding the light's view-projection matrix.
// Must mirror the @group(0) declaration in the depth-only shader.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the depth-pass frame group layout
func DepthFrameBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "depth frame bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: LightViewProjSize,
				},
			},
		},
	}
}

// ModelBindGroupLayout returns the layout descriptor for the per-object
// group: the world matrix and tint uniform. The visibility covers both
// stages so the same bind group is layout-compatible with the depth-only
// pipeline and every main-pass pipeline.
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the per-object group layout
func ModelBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "model bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: ModelConstantsSize,
				},
			},
		},
	}
}

// MaterialBindGroupLayout returns the layout descriptor for a material group
// holding the given number of texture/sampler pairs. Textures sit at even
// bindings and their samplers directly after, matching material staging.
//
// Parameters:
//   - textureCount: the number of texture/sampler pairs the technique binds
//
// Returns:
//   - wgpu.BindGroupLayoutDescriptor: the material group layout
func MaterialBindGroupLayout(textureCount int) wgpu.BindGroupLayoutDescriptor {
	entries := make([]wgpu.BindGroupLayoutEntry, 0, textureCount*2)
	for i := 0; i < textureCount; i++ {
		entries = append(entries,
			wgpu.BindGroupLayoutEntry{
				Binding:    uint32(i * 2),
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			wgpu.BindGroupLayoutEntry{
				Binding:    uint32(i*2 + 1),
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		)
	}
	return wgpu.BindGroupLayoutDescriptor{
		Label:   "material bind group layout",
		Entries: entries,
	}
}
