package scene

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umbra3d/umbra/engine/renderer/shader"
)

const testShaderDir = "../../examples/assets/shaders"

func TestRegisterTechniquePipelines(t *testing.T) {
	r := newFakeRenderer()

	require.NoError(t, RegisterTechniquePipelines(r, testShaderDir))

	for _, key := range []string{
		PipelineKeyDepthOnly,
		PipelineKeyLit,
		PipelineKeyTextureMix,
		PipelineKeyWiggle,
		PipelineKeyCellOutline,
		PipelineKeyCellFill,
		PipelineKeyMarker,
	} {
		assert.NotNil(t, r.Pipeline(key), key)
	}
}

func TestMarkerPipelineState(t *testing.T) {
	r := newFakeRenderer()
	require.NoError(t, RegisterTechniquePipelines(r, testShaderDir))

	marker := r.Pipeline(PipelineKeyMarker)
	require.NotNil(t, marker)

	// Markers render both faces of their glow sphere with additive blending
	// and without occluding anything behind them.
	assert.Equal(t, wgpu.CullModeNone, marker.CullMode())
	assert.True(t, marker.BlendEnabled())
	assert.False(t, marker.DepthWriteEnabled())
	assert.True(t, marker.DepthTestEnabled())

	blend := marker.BlendState()
	require.NotNil(t, blend)
	assert.Equal(t, wgpu.BlendFactorOne, blend.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorOne, blend.Color.DstFactor)

	// The fragment stage binds the glow sprite texture and its sampler.
	frag := marker.Shader(shader.ShaderTypeFragment)
	require.NotNil(t, frag)
	assert.Len(t, frag.BindGroupLayoutDescriptor(2).Entries, 2)
	assert.Contains(t, frag.Source(), "glow_texture")
}

func TestCellFillPipelineBindsRampTexture(t *testing.T) {
	r := newFakeRenderer()
	require.NoError(t, RegisterTechniquePipelines(r, testShaderDir))

	fill := r.Pipeline(PipelineKeyCellFill)
	require.NotNil(t, fill)

	// The fill pass material group carries two texture/sampler pairs: the
	// diffuse map and the 1D cell ramp.
	frag := fill.Shader(shader.ShaderTypeFragment)
	require.NotNil(t, frag)
	assert.Len(t, frag.BindGroupLayoutDescriptor(2).Entries, 4)
	assert.Contains(t, frag.Source(), "cell_map")

	// The outline pass shares the object's material bind group, so its
	// pipeline layout must match the fill pass's material group.
	outline := r.Pipeline(PipelineKeyCellOutline)
	require.NotNil(t, outline)
	vert := outline.Shader(shader.ShaderTypeVertex)
	require.NotNil(t, vert)
	assert.Len(t, vert.BindGroupLayoutDescriptor(2).Entries, 4)
}

func TestShadowPipelineState(t *testing.T) {
	r := newFakeRenderer()
	require.NoError(t, RegisterTechniquePipelines(r, testShaderDir))

	depth := r.Pipeline(PipelineKeyDepthOnly)
	require.NotNil(t, depth)

	assert.Equal(t, wgpu.CullModeFront, depth.CullMode())
	assert.NotZero(t, depth.DepthBias())
	assert.NotZero(t, depth.DepthBiasSlopeScale())
}
