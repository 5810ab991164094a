package scene

import (
	"fmt"
	"math"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/umbra3d/umbra/common"
	"github.com/umbra3d/umbra/engine/camera"
	"github.com/umbra3d/umbra/engine/core"
	"github.com/umbra3d/umbra/engine/light"
	"github.com/umbra3d/umbra/engine/model"
	"github.com/umbra3d/umbra/engine/renderer"
	"github.com/umbra3d/umbra/engine/renderer/bind_group_provider"
)

// Frame bind group binding indices. The frame provider carries the per-frame
// uniform at binding 0, one shadow map per light starting at binding 1, and
// the comparison sampler after the shadow maps.
const (
	FrameBindingConstants      = 0
	FrameBindingShadowMapBase  = 1
	FrameBindingShadowSampler  = FrameBindingShadowMapBase + MaxLights
)

// SceneObject pairs a model instance with the technique that draws it. The
// scene renders objects in insertion order, light markers always last.
type SceneObject struct {
	// Model is the positioned mesh instance.
	Model model.Model

	// Technique selects the main-pass pipelines for this object.
	Technique Technique
}

// lightOrbit holds the animation state for a light circling a target point.
type lightOrbit struct {
	enabled    bool
	lightIndex int
	target     mgl32.Vec3
	radius     float32
	height     float32
	speed      float32
	angle      float32
	frozen     bool
}

// Scene owns everything drawn in a frame: the camera, the object list with
// per-object techniques, up to MaxLights shadow-casting spotlights with their
// marker models, and the GPU frame state. RenderFrame runs the full
// multi-pass frame: one shadow depth pass per light submitted first, then the
// main colour pass that samples the shadow maps, then Present.
type Scene interface {
	// Name returns the scene's identifier.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the scene's renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// AddObject appends a model to the draw list with the given technique.
	// Objects draw in insertion order during the main pass.
	//
	// Parameters:
	//   - mdl: the model instance to add
	//   - technique: the technique that draws it
	AddObject(mdl model.Model, technique Technique)

	// Objects returns the scene's draw list, excluding light markers.
	//
	// Returns:
	//   - []*SceneObject: the objects in draw order
	Objects() []*SceneObject

	// AddLight registers a spotlight and its marker model. The marker is
	// drawn last each frame with the marker technique, tinted by the light's
	// colour and scaled by its strength. Fails once MaxLights lights are
	// registered.
	//
	// Parameters:
	//   - l: the spotlight to add
	//   - marker: the marker model drawn at the light's position, or nil
	//
	// Returns:
	//   - error: error if the light limit is reached
	AddLight(l light.Light, marker model.Model) error

	// Lights returns the registered spotlights.
	//
	// Returns:
	//   - []light.Light: the lights in registration order
	Lights() []light.Light

	// Markers returns the registered light marker objects.
	//
	// Returns:
	//   - []*SceneObject: the markers in registration order
	Markers() []*SceneObject

	// AmbientColour returns the scene's ambient light colour.
	//
	// Returns:
	//   - mgl32.Vec3: the ambient RGB colour
	AmbientColour() mgl32.Vec3

	// SetAmbientColour sets the scene's ambient light colour.
	//
	// Parameters:
	//   - colour: the ambient RGB colour
	SetAmbientColour(colour mgl32.Vec3)

	// SpecularPower returns the Blinn-Phong specular exponent shared by the
	// lit techniques.
	//
	// Returns:
	//   - float32: the specular exponent
	SpecularPower() float32

	// SetSpecularPower sets the Blinn-Phong specular exponent.
	//
	// Parameters:
	//   - power: the specular exponent
	SetSpecularPower(power float32)

	// ConfigureOrbit makes a light circle a target point on the XZ plane at
	// a fixed height above it, facing the target. Update advances the orbit;
	// the angle decreases over time.
	//
	// Parameters:
	//   - lightIndex: index of the light to animate
	//   - target: the point to circle and face
	//   - radius: orbit radius in world units
	//   - height: height above the target
	//   - speed: angular speed in radians per second
	ConfigureOrbit(lightIndex int, target mgl32.Vec3, radius, height, speed float32)

	// ToggleOrbit freezes or resumes the configured light orbit. A frozen
	// orbit holds the light at its current position.
	ToggleOrbit()

	// OrbitFrozen reports whether the light orbit is currently frozen.
	//
	// Returns:
	//   - bool: true if frozen
	OrbitFrozen() bool

	// TotalTime returns the accumulated scene time in seconds.
	//
	// Returns:
	//   - float32: seconds since the first Update
	TotalTime() float32

	// Update advances the scene animation by frameTime seconds: accumulates
	// the wiggle and scroll values, recomputes the fading factor, cycles the
	// first light's colour, pulses the second light's strength, advances the
	// light orbit, and syncs marker tint and scale to their lights. A zero
	// frameTime leaves all state unchanged.
	//
	// Parameters:
	//   - frameTime: seconds elapsed since the previous frame
	Update(frameTime float32)

	// InitGPUResources creates the scene's GPU frame state: a shadow map per
	// registered light, the comparison sampler, the frame constants bind
	// group, and the per-light depth pass bind groups. Must be called after
	// all lights are registered and before the first RenderFrame.
	//
	// Parameters:
	//   - frameLayout: bind group layout for the main-pass frame group
	//   - lightDepthLayout: bind group layout for the depth-pass frame group
	//
	// Returns:
	//   - error: error if any GPU resource creation fails
	InitGPUResources(frameLayout, lightDepthLayout wgpu.BindGroupLayoutDescriptor) error

	// InitObjectResources creates a model's per-object constants bind group
	// and, when the model has a material, stages and initializes the
	// material's textures and samplers.
	//
	// Parameters:
	//   - mdl: the model to initialize
	//   - modelLayout: bind group layout for the per-object group
	//   - materialLayout: bind group layout for the material group, or nil
	//     when the model's techniques bind no material
	//
	// Returns:
	//   - error: error if any GPU resource creation fails
	InitObjectResources(mdl model.Model, modelLayout wgpu.BindGroupLayoutDescriptor, materialLayout *wgpu.BindGroupLayoutDescriptor) error

	// FrameConstants builds the per-frame uniform block from the current
	// camera, lights, and animation state.
	//
	// Returns:
	//   - GPUFrameConstants: the frame constants
	FrameConstants() GPUFrameConstants

	// RenderFrame runs one complete frame: stages all uniform writes,
	// encodes and submits the shadow depth passes, encodes and submits the
	// main colour pass with per-object technique dispatch, and presents.
	// Objects whose GPU resources or pipelines are missing are skipped with
	// a warning rather than failing the frame.
	//
	// Returns:
	//   - error: error if a frame or pass could not be started
	RenderFrame() error

	// FrameComplete reports whether the last RenderFrame drew every object
	// without skipping any.
	//
	// Returns:
	//   - bool: true if nothing was skipped
	FrameComplete() bool

	// Release frees the scene's GPU resources: the frame and depth bind
	// groups, every light's shadow map, and each object's constants and
	// material resources.
	Release()
}

type scene struct {
	mu *sync.RWMutex

	name string

	cam camera.Camera
	r   renderer.Renderer

	objects []*SceneObject
	lights  []light.Light
	markers []*SceneObject

	ambientColour mgl32.Vec3
	specularPower float32

	shadowMapResolution int
	shadowNear          float32
	shadowFar           float32

	totalTime   float32
	wiggle      float32
	scrollShift float32
	fading      float32

	orbit lightOrbit

	frameProvider       bind_group_provider.BindGroupProvider
	lightDepthProviders []bind_group_provider.BindGroupProvider

	frameComplete bool
}

var _ Scene = &scene{}

// NewScene creates a new Scene with the given camera and renderer.
//
// Parameters:
//   - name: the scene identifier
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
//   - error: error if camera or renderer is nil
func NewScene(name string, cam camera.Camera, r renderer.Renderer, options ...SceneBuilderOption) (Scene, error) {
	if cam == nil {
		return nil, fmt.Errorf("scene %q requires a camera", name)
	}
	if r == nil {
		return nil, fmt.Errorf("scene %q requires a renderer", name)
	}

	s := &scene{
		mu:                  &sync.RWMutex{},
		name:                name,
		cam:                 cam,
		r:                   r,
		ambientColour:       mgl32.Vec3{0.2, 0.2, 0.3},
		specularPower:       256,
		shadowMapResolution: light.DefaultShadowMapResolution,
		shadowNear:          light.DefaultShadowNear,
		shadowFar:           light.DefaultShadowFar,
		frameComplete:       true,
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) AddObject(mdl model.Model, technique Technique) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, &SceneObject{Model: mdl, Technique: technique})
}

func (s *scene) Objects() []*SceneObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SceneObject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *scene) AddLight(l light.Light, marker model.Model) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lights) >= MaxLights {
		return fmt.Errorf("scene %q already has %d lights", s.name, MaxLights)
	}
	s.lights = append(s.lights, l)
	if marker != nil {
		marker.SetPosition(l.Position())
		s.markers = append(s.markers, &SceneObject{Model: marker, Technique: TechniqueMarker})
	}
	return nil
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]light.Light, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *scene) Markers() []*SceneObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SceneObject, len(s.markers))
	copy(out, s.markers)
	return out
}

func (s *scene) AmbientColour() mgl32.Vec3 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientColour
}

func (s *scene) SetAmbientColour(colour mgl32.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientColour = colour
}

func (s *scene) SpecularPower() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.specularPower
}

func (s *scene) SetSpecularPower(power float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.specularPower = power
}

func (s *scene) ConfigureOrbit(lightIndex int, target mgl32.Vec3, radius, height, speed float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orbit = lightOrbit{
		enabled:    true,
		lightIndex: lightIndex,
		target:     target,
		radius:     radius,
		height:     height,
		speed:      speed,
	}
}

func (s *scene) ToggleOrbit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orbit.frozen = !s.orbit.frozen
}

func (s *scene) OrbitFrozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orbit.frozen
}

func (s *scene) TotalTime() float32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalTime
}

func (s *scene) Update(frameTime float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalTime += frameTime
	s.wiggle += 6 * frameTime
	s.scrollShift += frameTime / 2

	t := float64(s.totalTime)
	s.fading = float32(math.Sin(t/3)+1) / 2

	if len(s.lights) > 0 {
		s.lights[0].SetColour(mgl32.Vec3{
			float32(math.Sin(t)+1) / 2,
			float32(math.Sin(t/2)+1) / 2,
			float32(math.Sin(t/3)+1) / 2,
		})
	}
	if len(s.lights) > 1 {
		s.lights[1].SetStrength(20 * (1 + float32(math.Sin(t))))
	}

	if s.orbit.enabled && s.orbit.lightIndex < len(s.lights) {
		if !s.orbit.frozen {
			s.orbit.angle -= s.orbit.speed * frameTime
		}
		l := s.lights[s.orbit.lightIndex]
		l.SetPosition(s.orbit.target.Add(mgl32.Vec3{
			float32(math.Cos(float64(s.orbit.angle))) * s.orbit.radius,
			s.orbit.height,
			float32(math.Sin(float64(s.orbit.angle))) * s.orbit.radius,
		}))
		l.FaceTarget(s.orbit.target)
	}

	// Markers mirror their light's colour and grow with its strength.
	for i, marker := range s.markers {
		if i >= len(s.lights) {
			break
		}
		l := s.lights[i]
		c := l.Colour()
		marker.Model.SetPosition(l.Position())
		marker.Model.SetTint(mgl32.Vec4{c[0], c[1], c[2], 1})
		scale := float32(math.Pow(float64(l.Strength()), 0.7))
		marker.Model.SetScale(mgl32.Vec3{scale, scale, scale})
	}
}

func (s *scene) InitGPUResources(frameLayout, lightDepthLayout wgpu.BindGroupLayoutDescriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.shadowMapResolution
	for _, l := range s.lights {
		if l.ShadowMap() != nil {
			continue
		}
		view, tex, err := s.r.CreateShadowDepthTexture(res, res)
		if err != nil {
			return fmt.Errorf("failed to create shadow map for light %q: %w", l.Name(), err)
		}
		l.SetShadowMap(&light.ShadowMap{Texture: tex, View: view, Resolution: uint32(res)})
	}

	samp, err := s.r.CreateComparisonSampler()
	if err != nil {
		return fmt.Errorf("failed to create shadow comparison sampler: %w", err)
	}

	fp := bind_group_provider.NewBindGroupProvider(
		s.name+"_frame",
		bind_group_provider.WithUniformBuffer(FrameBindingConstants, FrameConstantsSize),
	)
	for i, l := range s.lights {
		fp.SetExternalTextureView(FrameBindingShadowMapBase+i, l.ShadowMap().View)
	}
	fp.SetSampler(FrameBindingShadowSampler, samp)
	if err := s.r.InitBindGroup(fp, frameLayout); err != nil {
		return fmt.Errorf("failed to init frame bind group: %w", err)
	}
	s.frameProvider = fp

	s.lightDepthProviders = s.lightDepthProviders[:0]
	for _, l := range s.lights {
		dp := bind_group_provider.NewBindGroupProvider(
			s.name+"_depth_"+l.Name(),
			bind_group_provider.WithUniformBuffer(0, LightViewProjSize),
		)
		if err := s.r.InitBindGroup(dp, lightDepthLayout); err != nil {
			return fmt.Errorf("failed to init depth bind group for light %q: %w", l.Name(), err)
		}
		s.lightDepthProviders = append(s.lightDepthProviders, dp)
	}

	return nil
}

func (s *scene) InitObjectResources(mdl model.Model, modelLayout wgpu.BindGroupLayoutDescriptor, materialLayout *wgpu.BindGroupLayoutDescriptor) error {
	mp := bind_group_provider.NewBindGroupProvider(
		mdl.Name()+"_constants",
		bind_group_provider.WithUniformBuffer(0, ModelConstantsSize),
	)
	if err := s.r.InitBindGroup(mp, modelLayout); err != nil {
		return fmt.Errorf("failed to init model bind group for %q: %w", mdl.Name(), err)
	}
	mdl.SetModelProvider(mp)

	if mat := mdl.RenderMaterial(); mat != nil && materialLayout != nil {
		if err := mat.Stage(); err != nil {
			return fmt.Errorf("failed to stage material for %q: %w", mdl.Name(), err)
		}
		if err := s.r.InitBindGroup(mat.BindGroupProvider(), *materialLayout); err != nil {
			return fmt.Errorf("failed to init material bind group for %q: %w", mdl.Name(), err)
		}
	}
	return nil
}

func (s *scene) FrameConstants() GPUFrameConstants {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frameConstantsLocked()
}

// frameConstantsLocked builds the frame uniform block. Caller must hold at
// least a read lock.
func (s *scene) frameConstantsLocked() GPUFrameConstants {
	view := s.cam.ViewMatrix()
	proj := s.cam.ProjectionMatrix()
	viewProj := proj.Mul4(view)

	fc := GPUFrameConstants{
		View:           [16]float32(view),
		Proj:           [16]float32(proj),
		ViewProj:       [16]float32(viewProj),
		AmbientColour:  s.ambientColour,
		SpecularPower:  s.specularPower,
		CameraPosition: s.cam.Position(),
		Wiggle:         s.wiggle,
		ScrollShift:    s.scrollShift,
		Fading:         s.fading,
	}

	for i, l := range s.lights {
		if i >= MaxLights {
			break
		}
		col := l.Colour().Mul(l.Strength())
		fc.Lights[i] = GPULight{
			Position: l.Position(),
			Colour:   col,
			Facing:   l.Facing(),
			CosHalf:  l.CosHalfAngle(),
			View:     [16]float32(l.ViewMatrix()),
			Proj:     [16]float32(l.ProjectionMatrix(s.shadowNear, s.shadowFar)),
		}
	}
	return fc
}

func (s *scene) RenderFrame() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frameComplete = true

	if s.frameProvider == nil {
		return fmt.Errorf("scene %q has no GPU frame resources; call InitGPUResources first", s.name)
	}

	// Queue writes execute before any subsequently submitted command buffer,
	// so every uniform for both the shadow passes and the main pass must be
	// staged before the shadow frame is submitted.
	s.r.WriteBuffers(s.stageUniformWrites())

	if err := s.renderShadowPasses(); err != nil {
		return err
	}
	return s.renderMainPass()
}

func (s *scene) FrameComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frameComplete
}

// stageUniformWrites collects every uniform write for the frame: the frame
// constants, each light's depth pass view-projection, and each object's and
// marker's model constants.
func (s *scene) stageUniformWrites() []bind_group_provider.BufferWrite {
	writes := make([]bind_group_provider.BufferWrite, 0, 1+len(s.lightDepthProviders)+len(s.objects)+len(s.markers))

	fc := s.frameConstantsLocked()
	writes = append(writes, bind_group_provider.BufferWrite{
		Provider: s.frameProvider,
		Binding:  FrameBindingConstants,
		Data:     fc.Marshal(),
	})

	for i, l := range s.lights {
		if i >= len(s.lightDepthProviders) {
			break
		}
		vp := l.ProjectionMatrix(s.shadowNear, s.shadowFar).Mul4(l.ViewMatrix())
		block := [16]float32(vp)
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: s.lightDepthProviders[i],
			Binding:  0,
			Data:     append([]byte(nil), common.SliceToBytes(block[:])...),
		})
	}

	for _, obj := range s.objects {
		writes = s.appendModelWrite(writes, obj.Model)
	}
	for _, marker := range s.markers {
		writes = s.appendModelWrite(writes, marker.Model)
	}
	return writes
}

func (s *scene) appendModelWrite(writes []bind_group_provider.BufferWrite, mdl model.Model) []bind_group_provider.BufferWrite {
	provider := mdl.ModelProvider()
	if provider == nil {
		return writes
	}
	mc := BuildModelConstants(mdl)
	return append(writes, bind_group_provider.BufferWrite{
		Provider: provider,
		Binding:  0,
		Data:     append([]byte(nil), mc.Marshal()...),
	})
}

// renderShadowPasses encodes one depth-only pass per light into a single
// command buffer and submits it. The main pass sampling the shadow maps is
// submitted afterwards, so ordering is guaranteed by submission order.
func (s *scene) renderShadowPasses() error {
	if err := s.r.BeginShadowFrame(); err != nil {
		return fmt.Errorf("failed to begin shadow frame: %w", err)
	}

	for i, l := range s.lights {
		sm := l.ShadowMap()
		if sm == nil || sm.View == nil || i >= len(s.lightDepthProviders) {
			core.LogWarn("skipping shadow pass for light %q: no shadow map", l.Name())
			s.frameComplete = false
			continue
		}

		s.r.BeginShadowPass(sm.View)
		for _, obj := range s.objects {
			if !obj.Technique.CastsShadow() {
				continue
			}
			s.drawShadowObject(i, obj)
		}
		s.r.EndShadowPass()
	}

	s.r.EndShadowFrame()
	return nil
}

func (s *scene) drawShadowObject(lightIndex int, obj *SceneObject) {
	meshProvider, modelProvider := s.objectProviders(obj)
	if meshProvider == nil || modelProvider == nil {
		core.LogWarn("skipping shadow draw for %q: missing GPU resources", obj.Model.Name())
		s.frameComplete = false
		return
	}

	groups := []bind_group_provider.BindGroupProvider{
		s.lightDepthProviders[lightIndex],
		modelProvider,
	}
	if err := s.r.ShadowDrawCall(PipelineKeyDepthOnly, meshProvider, 1, groups); err != nil {
		core.LogWarn("shadow draw failed for %q: %v", obj.Model.Name(), err)
		s.frameComplete = false
	}
}

// renderMainPass encodes the colour pass: every object via its technique's
// pipelines in draw-list order, then the light markers last so their additive
// glow blends over the lit scene.
func (s *scene) renderMainPass() error {
	if err := s.r.BeginFrame(); err != nil {
		return fmt.Errorf("failed to begin frame: %w", err)
	}

	for _, obj := range s.objects {
		s.drawObject(obj)
	}
	for _, marker := range s.markers {
		s.drawObject(marker)
	}

	s.r.EndFrame()
	s.r.Present()
	return nil
}

func (s *scene) drawObject(obj *SceneObject) {
	passes := obj.Technique.Passes()
	if len(passes) == 0 {
		core.LogWarn("skipping %q: technique %s has no pipelines", obj.Model.Name(), obj.Technique)
		s.frameComplete = false
		return
	}

	meshProvider, modelProvider := s.objectProviders(obj)
	if meshProvider == nil || modelProvider == nil {
		core.LogWarn("skipping %q: missing GPU resources", obj.Model.Name())
		s.frameComplete = false
		return
	}

	groups := []bind_group_provider.BindGroupProvider{s.frameProvider, modelProvider}
	if mat := obj.Model.RenderMaterial(); mat != nil {
		mp := mat.BindGroupProvider()
		if mp == nil || mp.BindGroup() == nil {
			core.LogWarn("skipping %q: material %q has no bind group", obj.Model.Name(), mat.Name())
			s.frameComplete = false
			return
		}
		groups = append(groups, mp)
	}

	for _, key := range passes {
		if s.r.Pipeline(key) == nil {
			core.LogWarn("skipping %q pass %q: pipeline not registered", obj.Model.Name(), key)
			s.frameComplete = false
			continue
		}
		if err := s.r.DrawCall(key, meshProvider, 1, groups); err != nil {
			core.LogWarn("draw failed for %q pass %q: %v", obj.Model.Name(), key, err)
			s.frameComplete = false
		}
	}
}

// objectProviders returns the mesh and model providers for an object, or nil
// when either is missing or has no GPU resources.
func (s *scene) objectProviders(obj *SceneObject) (bind_group_provider.BindGroupProvider, bind_group_provider.BindGroupProvider) {
	if obj.Model == nil || obj.Model.Mesh() == nil {
		return nil, nil
	}
	meshProvider := obj.Model.Mesh().MeshProvider()
	modelProvider := obj.Model.ModelProvider()
	if meshProvider == nil || meshProvider.VertexBuffer() == nil {
		return nil, modelProvider
	}
	if modelProvider == nil || modelProvider.BindGroup() == nil {
		return meshProvider, nil
	}
	return meshProvider, modelProvider
}

func (s *scene) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frameProvider != nil {
		s.frameProvider.Release()
		s.frameProvider = nil
	}
	for _, dp := range s.lightDepthProviders {
		dp.Release()
	}
	s.lightDepthProviders = nil

	for _, l := range s.lights {
		l.ShadowMap().Release()
		l.SetShadowMap(nil)
	}

	for _, obj := range s.objects {
		releaseObject(obj)
	}
	for _, marker := range s.markers {
		releaseObject(marker)
	}
}

func releaseObject(obj *SceneObject) {
	if obj.Model == nil {
		return
	}
	if mp := obj.Model.ModelProvider(); mp != nil {
		mp.Release()
		obj.Model.SetModelProvider(nil)
	}
	if mat := obj.Model.RenderMaterial(); mat != nil {
		mat.Release()
	}
}

// BuildModelConstants builds the per-object uniform block from a model's
// transform and tint.
//
// Parameters:
//   - mdl: the model to read
//
// Returns:
//   - GPUModelConstants: the model constants
func BuildModelConstants(mdl model.Model) GPUModelConstants {
	return GPUModelConstants{
		World: [16]float32(mdl.WorldMatrix()),
		Tint:  [4]float32(mdl.Tint()),
	}
}
