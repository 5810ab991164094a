package scene

import (
	"fmt"
	"path/filepath"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/umbra3d/umbra/engine/light"
	"github.com/umbra3d/umbra/engine/model"
	"github.com/umbra3d/umbra/engine/renderer"
	"github.com/umbra3d/umbra/engine/renderer/pipeline"
	"github.com/umbra3d/umbra/engine/renderer/shader"
)

// RegisterTechniquePipelines loads the WGSL shaders from shaderDir and
// registers every pipeline the techniques dispatch to: the shared depth-only
// shadow pipeline plus one pipeline per main-pass key. Shadow geometry is
// front-culled with a depth bias to reduce acne; the outline pass of the cell
// shade technique front-culls to draw the extruded hull behind the fill; the
// marker pipeline blends additively with no culling and no depth write.
//
// Parameters:
//   - r: the renderer to register pipelines with
//   - shaderDir: directory containing the technique WGSL sources
//
// Returns:
//   - error: error if a shader fails to load or a pipeline fails to build
func RegisterTechniquePipelines(r renderer.Renderer, shaderDir string) error {
	vertexLayout := model.VertexBufferLayout()

	depthVert, err := shader.NewShader("depth_only_vert", shader.ShaderTypeVertex,
		filepath.Join(shaderDir, "depth-only-vert.wgsl"),
		shader.WithVertexLayouts(vertexLayout),
		shader.WithBindGroupLayout(0, DepthFrameBindGroupLayout()),
		shader.WithBindGroupLayout(1, ModelBindGroupLayout()),
	)
	if err != nil {
		return err
	}

	sceneVert, err := shader.NewShader("scene_vert", shader.ShaderTypeVertex,
		filepath.Join(shaderDir, "scene-vert.wgsl"),
		shader.WithVertexLayouts(vertexLayout),
		shader.WithBindGroupLayout(0, FrameBindGroupLayout()),
		shader.WithBindGroupLayout(1, ModelBindGroupLayout()),
	)
	if err != nil {
		return err
	}

	wiggleVert, err := shader.NewShader("wiggle_vert", shader.ShaderTypeVertex,
		filepath.Join(shaderDir, "wiggle-vert.wgsl"),
		shader.WithVertexLayouts(vertexLayout),
		shader.WithBindGroupLayout(0, FrameBindGroupLayout()),
		shader.WithBindGroupLayout(1, ModelBindGroupLayout()),
	)
	if err != nil {
		return err
	}

	outlineVert, err := shader.NewShader("cell_outline_vert", shader.ShaderTypeVertex,
		filepath.Join(shaderDir, "cell-outline-vert.wgsl"),
		shader.WithVertexLayouts(vertexLayout),
		shader.WithBindGroupLayout(0, FrameBindGroupLayout()),
		shader.WithBindGroupLayout(1, ModelBindGroupLayout()),
		// The outline pass binds the object's material group alongside the
		// fill pass even though it never samples it, so the fill pass's
		// two-texture layout (diffuse + cell ramp) must be part of the
		// pipeline layout.
		shader.WithBindGroupLayout(2, MaterialBindGroupLayout(2)),
	)
	if err != nil {
		return err
	}

	litFrag, err := shader.NewShader("lit_frag", shader.ShaderTypeFragment,
		filepath.Join(shaderDir, "lit-frag.wgsl"),
		shader.WithBindGroupLayout(0, FrameBindGroupLayout()),
		shader.WithBindGroupLayout(2, MaterialBindGroupLayout(1)),
	)
	if err != nil {
		return err
	}

	mixFrag, err := shader.NewShader("texture_mix_frag", shader.ShaderTypeFragment,
		filepath.Join(shaderDir, "texture-mix-frag.wgsl"),
		shader.WithBindGroupLayout(0, FrameBindGroupLayout()),
		shader.WithBindGroupLayout(2, MaterialBindGroupLayout(2)),
	)
	if err != nil {
		return err
	}

	wiggleFrag, err := shader.NewShader("wiggle_frag", shader.ShaderTypeFragment,
		filepath.Join(shaderDir, "wiggle-frag.wgsl"),
		shader.WithBindGroupLayout(0, FrameBindGroupLayout()),
		shader.WithBindGroupLayout(2, MaterialBindGroupLayout(1)),
	)
	if err != nil {
		return err
	}

	outlineFrag, err := shader.NewShader("cell_outline_frag", shader.ShaderTypeFragment,
		filepath.Join(shaderDir, "cell-outline-frag.wgsl"),
	)
	if err != nil {
		return err
	}

	// The fill pass binds the diffuse map plus a point-sampled cell ramp
	// texture that quantizes the lighting into bands.
	fillFrag, err := shader.NewShader("cell_fill_frag", shader.ShaderTypeFragment,
		filepath.Join(shaderDir, "cell-fill-frag.wgsl"),
		shader.WithBindGroupLayout(0, FrameBindGroupLayout()),
		shader.WithBindGroupLayout(2, MaterialBindGroupLayout(2)),
	)
	if err != nil {
		return err
	}

	markerVert, err := shader.NewShader("marker_vert", shader.ShaderTypeVertex,
		filepath.Join(shaderDir, "marker-vert.wgsl"),
		shader.WithVertexLayouts(vertexLayout),
		shader.WithBindGroupLayout(0, FrameBindGroupLayout()),
		shader.WithBindGroupLayout(1, ModelBindGroupLayout()),
	)
	if err != nil {
		return err
	}

	markerFrag, err := shader.NewShader("marker_frag", shader.ShaderTypeFragment,
		filepath.Join(shaderDir, "marker-frag.wgsl"),
		shader.WithBindGroupLayout(1, ModelBindGroupLayout()),
		shader.WithBindGroupLayout(2, MaterialBindGroupLayout(1)),
	)
	if err != nil {
		return err
	}

	pipelines := []pipeline.Pipeline{
		pipeline.NewPipeline(PipelineKeyDepthOnly, pipeline.PipelineTypeDepthOnly,
			pipeline.WithVertexShader(depthVert),
			pipeline.WithCullMode(wgpu.CullModeFront),
			pipeline.WithDepthBias(light.DefaultShadowDepthBias, light.DefaultShadowSlopeScaleBias),
		),
		pipeline.NewPipeline(PipelineKeyLit, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(sceneVert),
			pipeline.WithFragmentShader(litFrag),
			pipeline.WithCullMode(wgpu.CullModeBack),
		),
		pipeline.NewPipeline(PipelineKeyTextureMix, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(sceneVert),
			pipeline.WithFragmentShader(mixFrag),
			pipeline.WithCullMode(wgpu.CullModeBack),
		),
		pipeline.NewPipeline(PipelineKeyWiggle, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(wiggleVert),
			pipeline.WithFragmentShader(wiggleFrag),
			pipeline.WithCullMode(wgpu.CullModeBack),
		),
		pipeline.NewPipeline(PipelineKeyCellOutline, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(outlineVert),
			pipeline.WithFragmentShader(outlineFrag),
			pipeline.WithCullMode(wgpu.CullModeFront),
		),
		pipeline.NewPipeline(PipelineKeyCellFill, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(sceneVert),
			pipeline.WithFragmentShader(fillFrag),
			pipeline.WithCullMode(wgpu.CullModeBack),
		),
		pipeline.NewPipeline(PipelineKeyMarker, pipeline.PipelineTypeRender,
			pipeline.WithVertexShader(markerVert),
			pipeline.WithFragmentShader(markerFrag),
			pipeline.WithCullMode(wgpu.CullModeNone),
			pipeline.WithDepthWriteEnabled(false),
			pipeline.WithBlendEnabled(true),
			pipeline.WithBlendState(&wgpu.BlendState{
				Color: wgpu.BlendComponent{
					Operation: wgpu.BlendOperationAdd,
					SrcFactor: wgpu.BlendFactorOne,
					DstFactor: wgpu.BlendFactorOne,
				},
				Alpha: wgpu.BlendComponent{
					Operation: wgpu.BlendOperationAdd,
					SrcFactor: wgpu.BlendFactorOne,
					DstFactor: wgpu.BlendFactorOne,
				},
			}),
		),
	}

	if err := r.RegisterPipelines(pipelines...); err != nil {
		return fmt.Errorf("failed to register technique pipelines: %w", err)
	}
	return nil
}
