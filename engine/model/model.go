package model

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/umbra3d/umbra/common"
	"github.com/umbra3d/umbra/engine/renderer/bind_group_provider"
	"github.com/umbra3d/umbra/engine/renderer/material"
)

const (
	modelMoveSpeed     = 25.0
	modelRotationSpeed = 2.0
)

// modelImpl is the implementation of the Model interface.
type modelImpl struct {
	name     string
	mesh     Mesh
	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
	tint     mgl32.Vec4

	renderMaterial material.Material
	modelProvider  bind_group_provider.BindGroupProvider
}

// Model is a positioned instance of a Mesh in the scene. It holds the world
// transform (position, Euler rotation, scale), an optional colour tint, the
// render material, and the BindGroupProvider carrying this instance's
// per-object GPU constants.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Mesh retrieves the geometry this instance renders.
	//
	// Returns:
	//   - Mesh: the mesh
	Mesh() Mesh

	// Position returns the model's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Rotation returns the model's Euler rotation in radians.
	//
	// Returns:
	//   - mgl32.Vec3: the rotation (x pitch, y yaw, z roll)
	Rotation() mgl32.Vec3

	// Scale returns the model's per-axis scale factors.
	//
	// Returns:
	//   - mgl32.Vec3: the scale
	Scale() mgl32.Vec3

	// Tint returns the model's colour tint. Defaults to opaque white.
	//
	// Returns:
	//   - mgl32.Vec4: the RGBA tint
	Tint() mgl32.Vec4

	// WorldMatrix builds the world transform from position, rotation, and scale.
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix (column-major)
	WorldMatrix() mgl32.Mat4

	// SetPosition sets the model's world-space position.
	//
	// Parameters:
	//   - position: the new position
	SetPosition(position mgl32.Vec3)

	// SetRotation sets the model's Euler rotation in radians.
	//
	// Parameters:
	//   - rotation: the new rotation (x pitch, y yaw, z roll)
	SetRotation(rotation mgl32.Vec3)

	// SetScale sets the model's per-axis scale factors.
	//
	// Parameters:
	//   - scale: the new scale
	SetScale(scale mgl32.Vec3)

	// SetTint sets the model's colour tint.
	//
	// Parameters:
	//   - tint: the RGBA tint
	SetTint(tint mgl32.Vec4)

	// FaceTarget rotates the model so its local Z axis points at a world-space
	// point. Roll is reset to zero.
	//
	// Parameters:
	//   - target: the point to face
	FaceTarget(target mgl32.Vec3)

	// RenderMaterial retrieves the render-ready material for this model, or
	// nil if none is assigned.
	//
	// Returns:
	//   - material.Material: the material or nil
	RenderMaterial() material.Material

	// SetRenderMaterial assigns the render-ready material for this model.
	//
	// Parameters:
	//   - mat: the material to set
	SetRenderMaterial(mat material.Material)

	// ModelProvider retrieves the BindGroupProvider holding this instance's
	// per-object GPU constants. Returns nil before scene setup.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider or nil
	ModelProvider() bind_group_provider.BindGroupProvider

	// SetModelProvider assigns the per-object constants provider.
	//
	// Parameters:
	//   - provider: the provider to set
	SetModelProvider(provider bind_group_provider.BindGroupProvider)

	// Control applies one frame of keyboard movement. I/K drive the model
	// along its local forward axis, J/L yaw it, U/O move it along the world
	// Y axis, and comma/period roll it. Movement scales with frameTime.
	//
	// Parameters:
	//   - frameTime: seconds elapsed since the previous frame
	//   - keys: the key state to read held keys from
	Control(frameTime float32, keys *common.KeyTracker)
}

var _ Model = &modelImpl{}

// NewModel creates a new Model instance with the specified options applied.
// Scale defaults to one and tint to opaque white.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &modelImpl{
		scale: mgl32.Vec3{1, 1, 1},
		tint:  mgl32.Vec4{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *modelImpl) Name() string {
	return m.name
}

func (m *modelImpl) Mesh() Mesh {
	return m.mesh
}

func (m *modelImpl) Position() mgl32.Vec3 {
	return m.position
}

func (m *modelImpl) Rotation() mgl32.Vec3 {
	return m.rotation
}

func (m *modelImpl) Scale() mgl32.Vec3 {
	return m.scale
}

func (m *modelImpl) Tint() mgl32.Vec4 {
	return m.tint
}

func (m *modelImpl) WorldMatrix() mgl32.Mat4 {
	return common.WorldTransform(m.position, m.rotation, m.scale)
}

func (m *modelImpl) SetPosition(position mgl32.Vec3) {
	m.position = position
}

func (m *modelImpl) SetRotation(rotation mgl32.Vec3) {
	m.rotation = rotation
}

func (m *modelImpl) SetScale(scale mgl32.Vec3) {
	m.scale = scale
}

func (m *modelImpl) SetTint(tint mgl32.Vec4) {
	m.tint = tint
}

func (m *modelImpl) FaceTarget(target mgl32.Vec3) {
	m.rotation = common.FaceTarget(m.position, target)
}

func (m *modelImpl) RenderMaterial() material.Material {
	return m.renderMaterial
}

func (m *modelImpl) SetRenderMaterial(mat material.Material) {
	m.renderMaterial = mat
}

func (m *modelImpl) ModelProvider() bind_group_provider.BindGroupProvider {
	return m.modelProvider
}

func (m *modelImpl) SetModelProvider(provider bind_group_provider.BindGroupProvider) {
	m.modelProvider = provider
}

func (m *modelImpl) Control(frameTime float32, keys *common.KeyTracker) {
	rot := modelRotationSpeed * frameTime
	if keys.IsDown(common.KeyJ) {
		m.rotation[1] -= rot
	}
	if keys.IsDown(common.KeyL) {
		m.rotation[1] += rot
	}
	if keys.IsDown(common.KeyComma) {
		m.rotation[2] -= rot
	}
	if keys.IsDown(common.KeyPeriod) {
		m.rotation[2] += rot
	}

	world := m.WorldMatrix()
	forward := common.ForwardAxis(world)

	move := modelMoveSpeed * frameTime
	if keys.IsDown(common.KeyI) {
		m.position = m.position.Add(forward.Mul(move))
	}
	if keys.IsDown(common.KeyK) {
		m.position = m.position.Sub(forward.Mul(move))
	}
	if keys.IsDown(common.KeyU) {
		m.position[1] += move
	}
	if keys.IsDown(common.KeyO) {
		m.position[1] -= move
	}
}
