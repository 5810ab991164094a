package light

import "github.com/cogentcore/webgpu/wgpu"

// DefaultShadowMapResolution is the default width and height in texels of a
// spotlight's shadow depth texture. Scenes use this as their initial value but
// can override it via configuration.
const DefaultShadowMapResolution = 1024

// DefaultShadowNear is the default near plane for the spotlight's shadow
// projection.
const DefaultShadowNear float32 = 0.1

// DefaultShadowFar is the default far plane for the spotlight's shadow
// projection.
const DefaultShadowFar float32 = 10000.0

// DefaultShadowDepthBias is the constant depth bias applied during the shadow
// depth pass to reduce shadow acne artifacts.
const DefaultShadowDepthBias int32 = 2

// DefaultShadowSlopeScaleBias is the slope-scaled depth bias applied during
// the shadow depth pass. Surfaces steep relative to the light need a larger
// offset than facing ones.
const DefaultShadowSlopeScaleBias float32 = 2.0

// ShadowMap holds the GPU depth resources for one spotlight. The texture is
// rendered during the light's depth pass and sampled with a comparison
// sampler during the main colour pass. The light owns these resources; bind
// group providers that reference the view must treat it as external.
type ShadowMap struct {
	// Texture is the Depth32Float texture the depth pass renders into.
	Texture *wgpu.Texture

	// View is the full-texture view used both as a depth attachment and as a
	// sampled binding.
	View *wgpu.TextureView

	// Resolution is the width and height of the texture in texels.
	Resolution uint32
}

// Release frees the GPU texture and view. Safe to call on a partially
// initialized ShadowMap.
func (s *ShadowMap) Release() {
	if s == nil {
		return
	}
	if s.View != nil {
		s.View.Release()
		s.View = nil
	}
	if s.Texture != nil {
		s.Texture.Release()
		s.Texture = nil
	}
}
