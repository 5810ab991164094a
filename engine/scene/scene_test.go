package scene

import (
	"fmt"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umbra3d/umbra/common"
	"github.com/umbra3d/umbra/engine/camera"
	"github.com/umbra3d/umbra/engine/light"
	"github.com/umbra3d/umbra/engine/model"
	"github.com/umbra3d/umbra/engine/renderer"
	"github.com/umbra3d/umbra/engine/renderer/bind_group_provider"
	"github.com/umbra3d/umbra/engine/renderer/pipeline"
)

// fakeRenderer records the order of frame calls so tests can assert the
// shadow-then-main submission sequence without a GPU. Bind groups and buffers
// are zero-value wgpu handles; nothing here may be Released.
type fakeRenderer struct {
	events    []string
	pipelines map[string]pipeline.Pipeline
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer(pipelineKeys ...string) *fakeRenderer {
	f := &fakeRenderer{pipelines: make(map[string]pipeline.Pipeline)}
	for _, key := range pipelineKeys {
		f.pipelines[key] = pipeline.NewPipeline(key, pipeline.PipelineTypeRender)
	}
	return f
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline  { return f.pipelines[key] }
func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline { return f.pipelines }

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) SetPipeline(key string, p pipeline.Pipeline) { f.pipelines[key] = p }
func (f *fakeRenderer) Resize(width, height int)                   {}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	provider.SetVertexBuffer(&wgpu.Buffer{})
	provider.SetIndexBuffer(&wgpu.Buffer{})
	provider.SetIndexCount(indexCount)
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	provider.SetBindGroup(&wgpu.BindGroup{})
	return nil
}

func (f *fakeRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}

func (f *fakeRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.events = append(f.events, fmt.Sprintf("WriteBuffers:%d", len(writes)))
}

func (f *fakeRenderer) BeginFrame() error {
	f.events = append(f.events, "BeginFrame")
	return nil
}

func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	f.events = append(f.events, "Draw:"+pipelineKey)
	return nil
}

func (f *fakeRenderer) EndFrame() { f.events = append(f.events, "EndFrame") }
func (f *fakeRenderer) Present()  { f.events = append(f.events, "Present") }

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (f *fakeRenderer) CreateShadowDepthTexture(width, height int) (*wgpu.TextureView, *wgpu.Texture, error) {
	return &wgpu.TextureView{}, &wgpu.Texture{}, nil
}

func (f *fakeRenderer) CreateComparisonSampler() (*wgpu.Sampler, error) {
	return &wgpu.Sampler{}, nil
}

func (f *fakeRenderer) BeginShadowFrame() error {
	f.events = append(f.events, "BeginShadowFrame")
	return nil
}

func (f *fakeRenderer) BeginShadowPass(depthView *wgpu.TextureView) {
	f.events = append(f.events, "BeginShadowPass")
}

func (f *fakeRenderer) ShadowDrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	f.events = append(f.events, "ShadowDraw:"+pipelineKey)
	return nil
}

func (f *fakeRenderer) EndShadowPass()  { f.events = append(f.events, "EndShadowPass") }
func (f *fakeRenderer) EndShadowFrame() { f.events = append(f.events, "EndShadowFrame") }

func newTestMesh(name string) model.Mesh {
	return model.NewMesh(
		model.WithMeshName(name),
		model.WithVertices([]model.GPUVertex{
			{Position: [3]float32{0, 0, 0}},
			{Position: [3]float32{1, 0, 0}},
			{Position: [3]float32{0, 1, 0}},
		}),
		model.WithIndices([]uint32{0, 1, 2}),
	)
}

func newTestModel(name string) model.Model {
	msh := newTestMesh(name)
	provider := bind_group_provider.NewBindGroupProvider(name + "_mesh")
	provider.SetVertexBuffer(&wgpu.Buffer{})
	provider.SetIndexBuffer(&wgpu.Buffer{})
	provider.SetIndexCount(msh.IndexCount())
	msh.SetMeshProvider(provider)

	return model.NewModel(model.WithName(name), model.WithMesh(msh))
}

func newTestScene(t *testing.T, r renderer.Renderer) Scene {
	t.Helper()
	sc, err := NewScene("test", camera.NewCamera(), r)
	require.NoError(t, err)
	return sc
}

func TestNewSceneRequiresCameraAndRenderer(t *testing.T) {
	_, err := NewScene("test", nil, newFakeRenderer())
	assert.Error(t, err)

	_, err = NewScene("test", camera.NewCamera(), nil)
	assert.Error(t, err)
}

func TestAddLightLimit(t *testing.T) {
	sc := newTestScene(t, newFakeRenderer())

	require.NoError(t, sc.AddLight(light.NewLight(light.WithName("a")), nil))
	require.NoError(t, sc.AddLight(light.NewLight(light.WithName("b")), nil))
	assert.Error(t, sc.AddLight(light.NewLight(light.WithName("c")), nil))
	assert.Len(t, sc.Lights(), MaxLights)
}

func TestAddLightPositionsMarker(t *testing.T) {
	sc := newTestScene(t, newFakeRenderer())

	l := light.NewLight(light.WithName("a"), light.WithPosition(mgl32.Vec3{3, 4, 5}))
	marker := newTestModel("marker")
	require.NoError(t, sc.AddLight(l, marker))

	markers := sc.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, mgl32.Vec3{3, 4, 5}, markers[0].Model.Position())
	assert.Equal(t, TechniqueMarker, markers[0].Technique)
}

func TestUpdateAnimation(t *testing.T) {
	sc := newTestScene(t, newFakeRenderer())

	cycler := light.NewLight(light.WithName("cycler"))
	pulser := light.NewLight(light.WithName("pulser"))
	require.NoError(t, sc.AddLight(cycler, nil))
	require.NoError(t, sc.AddLight(pulser, nil))

	sc.Update(0.5)
	sc.Update(0.5)

	tt := float64(1)
	assert.InDelta(t, 1.0, sc.TotalTime(), 1e-5)

	fc := sc.FrameConstants()
	assert.InDelta(t, 6.0, fc.Wiggle, 1e-4)
	assert.InDelta(t, 0.5, fc.ScrollShift, 1e-4)
	assert.InDelta(t, (math.Sin(tt/3)+1)/2, fc.Fading, 1e-4)

	c := cycler.Colour()
	assert.InDelta(t, (math.Sin(tt)+1)/2, c[0], 1e-4)
	assert.InDelta(t, (math.Sin(tt/2)+1)/2, c[1], 1e-4)
	assert.InDelta(t, (math.Sin(tt/3)+1)/2, c[2], 1e-4)

	assert.InDelta(t, 20*(1+math.Sin(tt)), pulser.Strength(), 1e-3)
}

func TestUpdateZeroFrameTimeIsIdempotent(t *testing.T) {
	sc := newTestScene(t, newFakeRenderer())
	l := light.NewLight(light.WithName("a"))
	require.NoError(t, sc.AddLight(l, nil))

	sc.Update(0.25)
	before := sc.FrameConstants()
	colourBefore := l.Colour()

	sc.Update(0)

	assert.Equal(t, before, sc.FrameConstants())
	assert.Equal(t, colourBefore, l.Colour())
}

func TestUpdateOrbit(t *testing.T) {
	sc := newTestScene(t, newFakeRenderer())
	l := light.NewLight(light.WithName("orbiter"))
	require.NoError(t, sc.AddLight(l, nil))

	target := mgl32.Vec3{10, 0, 10}
	sc.ConfigureOrbit(0, target, 20, 5, 1)

	// The orbit angle decreases, so after one second the light sits at
	// angle -1 rad rather than +1.
	sc.Update(1)
	want := target.Add(mgl32.Vec3{
		float32(math.Cos(-1)) * 20,
		5,
		float32(math.Sin(-1)) * 20,
	})
	assert.InDelta(t, want[0], l.Position()[0], 1e-4)
	assert.InDelta(t, want[1], l.Position()[1], 1e-4)
	assert.InDelta(t, want[2], l.Position()[2], 1e-4)

	// Frozen orbits hold position through further updates.
	sc.ToggleOrbit()
	assert.True(t, sc.OrbitFrozen())
	frozen := l.Position()
	sc.Update(1)
	assert.Equal(t, frozen, l.Position())

	// Resuming advances the angle again.
	sc.ToggleOrbit()
	sc.Update(1)
	assert.NotEqual(t, frozen, l.Position())
}

func TestUpdateSyncsMarkersToLights(t *testing.T) {
	sc := newTestScene(t, newFakeRenderer())
	l := light.NewLight(light.WithName("a"), light.WithStrength(10))
	marker := newTestModel("marker")
	require.NoError(t, sc.AddLight(l, marker))

	sc.Update(0.1)

	c := l.Colour()
	assert.Equal(t, mgl32.Vec4{c[0], c[1], c[2], 1}, marker.Tint())
	assert.Equal(t, l.Position(), marker.Position())

	wantScale := float32(math.Pow(float64(l.Strength()), 0.7))
	assert.InDelta(t, wantScale, marker.Scale()[0], 1e-4)
}

func TestFrameConstants(t *testing.T) {
	sc := newTestScene(t, newFakeRenderer())
	sc.SetAmbientColour(mgl32.Vec3{0.1, 0.2, 0.3})
	sc.SetSpecularPower(64)

	l := light.NewLight(
		light.WithName("a"),
		light.WithPosition(mgl32.Vec3{5, 10, 0}),
		light.WithColour(mgl32.Vec3{1, 0.5, 0.25}),
		light.WithStrength(4),
		light.WithConeAngle(60),
	)
	require.NoError(t, sc.AddLight(l, nil))

	fc := sc.FrameConstants()

	view := sc.Camera().ViewMatrix()
	proj := sc.Camera().ProjectionMatrix()
	assert.Equal(t, [16]float32(proj.Mul4(view)), fc.ViewProj)

	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, fc.AmbientColour)
	assert.Equal(t, float32(64), fc.SpecularPower)

	assert.Equal(t, [3]float32{5, 10, 0}, fc.Lights[0].Position)
	assert.Equal(t, [3]float32{4, 2, 1}, fc.Lights[0].Colour)
	assert.InDelta(t, math.Cos(30*math.Pi/180), fc.Lights[0].CosHalf, 1e-4)
}

func TestRenderFrameRequiresInit(t *testing.T) {
	sc := newTestScene(t, newFakeRenderer())
	assert.Error(t, sc.RenderFrame())
}

func buildRenderableScene(t *testing.T, r *fakeRenderer) Scene {
	t.Helper()
	sc := newTestScene(t, r)

	sc.AddObject(newTestModel("teapot"), TechniqueLit)
	sc.AddObject(newTestModel("troll"), TechniqueCellShade)

	l := light.NewLight(light.WithName("spot"))
	require.NoError(t, sc.AddLight(l, newTestModel("marker")))

	require.NoError(t, sc.InitGPUResources(FrameBindGroupLayout(), DepthFrameBindGroupLayout()))
	for _, obj := range sc.Objects() {
		require.NoError(t, sc.InitObjectResources(obj.Model, ModelBindGroupLayout(), nil))
	}
	for _, marker := range sc.Markers() {
		require.NoError(t, sc.InitObjectResources(marker.Model, ModelBindGroupLayout(), nil))
	}
	return sc
}

func TestRenderFrameOrdering(t *testing.T) {
	r := newFakeRenderer(
		PipelineKeyLit,
		PipelineKeyCellOutline,
		PipelineKeyCellFill,
		PipelineKeyMarker,
	)
	sc := buildRenderableScene(t, r)

	require.NoError(t, sc.RenderFrame())
	assert.True(t, sc.FrameComplete())

	// One write each for the frame constants, the light's depth uniform, both
	// objects, and the marker. All writes land before any pass begins, the
	// shadow pass completes before the main pass, the outline pass precedes
	// the fill pass, and the marker draws last.
	assert.Equal(t, []string{
		"WriteBuffers:5",
		"BeginShadowFrame",
		"BeginShadowPass",
		"ShadowDraw:" + PipelineKeyDepthOnly,
		"ShadowDraw:" + PipelineKeyDepthOnly,
		"EndShadowPass",
		"EndShadowFrame",
		"BeginFrame",
		"Draw:" + PipelineKeyLit,
		"Draw:" + PipelineKeyCellOutline,
		"Draw:" + PipelineKeyCellFill,
		"Draw:" + PipelineKeyMarker,
		"EndFrame",
		"Present",
	}, r.events)
}

func TestRenderFrameTechniqueSequence(t *testing.T) {
	r := newFakeRenderer(
		PipelineKeyLit,
		PipelineKeyTextureMix,
		PipelineKeyWiggle,
		PipelineKeyCellOutline,
		PipelineKeyCellFill,
		PipelineKeyMarker,
	)
	sc := newTestScene(t, r)

	// The demo scene's content: lit floor and teapot, texture-mixing cube,
	// wiggling sphere, cell-shaded troll, glow marker last.
	sc.AddObject(newTestModel("floor"), TechniqueLit)
	sc.AddObject(newTestModel("teapot"), TechniqueLit)
	sc.AddObject(newTestModel("cube"), TechniqueTextureMix)
	sc.AddObject(newTestModel("sphere"), TechniqueWiggle)
	sc.AddObject(newTestModel("troll"), TechniqueCellShade)

	l := light.NewLight(light.WithName("spot"))
	require.NoError(t, sc.AddLight(l, newTestModel("marker")))

	require.NoError(t, sc.InitGPUResources(FrameBindGroupLayout(), DepthFrameBindGroupLayout()))
	for _, obj := range sc.Objects() {
		require.NoError(t, sc.InitObjectResources(obj.Model, ModelBindGroupLayout(), nil))
	}
	for _, marker := range sc.Markers() {
		require.NoError(t, sc.InitObjectResources(marker.Model, ModelBindGroupLayout(), nil))
	}

	require.NoError(t, sc.RenderFrame())
	require.True(t, sc.FrameComplete())

	var draws []string
	for _, ev := range r.events {
		if len(ev) > 5 && ev[:5] == "Draw:" {
			draws = append(draws, ev[5:])
		}
	}
	assert.Equal(t, []string{
		PipelineKeyLit,
		PipelineKeyLit,
		PipelineKeyTextureMix,
		PipelineKeyWiggle,
		PipelineKeyCellOutline,
		PipelineKeyCellFill,
		PipelineKeyMarker,
	}, draws)
}

func TestRenderFrameSkipsMissingPipeline(t *testing.T) {
	r := newFakeRenderer(
		PipelineKeyLit,
		PipelineKeyCellOutline,
		PipelineKeyMarker,
	)
	sc := buildRenderableScene(t, r)

	require.NoError(t, sc.RenderFrame())
	assert.False(t, sc.FrameComplete())

	assert.Contains(t, r.events, "Draw:"+PipelineKeyCellOutline)
	assert.NotContains(t, r.events, "Draw:"+PipelineKeyCellFill)
	assert.Contains(t, r.events, "Present")
}

func TestRenderFrameSkipsObjectWithoutResources(t *testing.T) {
	r := newFakeRenderer(PipelineKeyLit)
	sc := newTestScene(t, r)

	l := light.NewLight(light.WithName("spot"))
	require.NoError(t, sc.AddLight(l, nil))
	require.NoError(t, sc.InitGPUResources(FrameBindGroupLayout(), DepthFrameBindGroupLayout()))

	// Object added after init never got a model bind group.
	sc.AddObject(newTestModel("late"), TechniqueLit)

	require.NoError(t, sc.RenderFrame())
	assert.False(t, sc.FrameComplete())
	assert.NotContains(t, r.events, "Draw:"+PipelineKeyLit)
	assert.Contains(t, r.events, "Present")
}

func TestMarkersCastNoShadow(t *testing.T) {
	r := newFakeRenderer(PipelineKeyMarker)
	sc := newTestScene(t, r)

	l := light.NewLight(light.WithName("spot"))
	require.NoError(t, sc.AddLight(l, newTestModel("marker")))
	require.NoError(t, sc.InitGPUResources(FrameBindGroupLayout(), DepthFrameBindGroupLayout()))
	for _, marker := range sc.Markers() {
		require.NoError(t, sc.InitObjectResources(marker.Model, ModelBindGroupLayout(), nil))
	}

	require.NoError(t, sc.RenderFrame())

	assert.NotContains(t, r.events, "ShadowDraw:"+PipelineKeyDepthOnly)
	assert.Contains(t, r.events, "Draw:"+PipelineKeyMarker)
}

func TestBuildModelConstants(t *testing.T) {
	mdl := newTestModel("cube")
	mdl.SetPosition(mgl32.Vec3{1, 2, 3})
	mdl.SetTint(mgl32.Vec4{0.5, 0.6, 0.7, 1})

	mc := BuildModelConstants(mdl)

	assert.Equal(t, [16]float32(mdl.WorldMatrix()), mc.World)
	assert.Equal(t, [4]float32{0.5, 0.6, 0.7, 1}, mc.Tint)
}
