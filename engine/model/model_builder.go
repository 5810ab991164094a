package model

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/umbra3d/umbra/engine/renderer/bind_group_provider"
	"github.com/umbra3d/umbra/engine/renderer/material"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*modelImpl)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *modelImpl) {
		m.name = name
	}
}

// WithMesh is an option builder that sets the geometry this Model renders.
//
// Parameters:
//   - msh: the mesh to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh option to a model
func WithMesh(msh Mesh) ModelBuilderOption {
	return func(m *modelImpl) {
		m.mesh = msh
	}
}

// WithPosition is an option builder that sets the Model's world-space position.
//
// Parameters:
//   - position: the position to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the position option to a model
func WithPosition(position mgl32.Vec3) ModelBuilderOption {
	return func(m *modelImpl) {
		m.position = position
	}
}

// WithRotation is an option builder that sets the Model's Euler rotation in radians.
//
// Parameters:
//   - rotation: the rotation to set (x pitch, y yaw, z roll)
//
// Returns:
//   - ModelBuilderOption: a function that applies the rotation option to a model
func WithRotation(rotation mgl32.Vec3) ModelBuilderOption {
	return func(m *modelImpl) {
		m.rotation = rotation
	}
}

// WithScale is an option builder that sets the Model's per-axis scale factors.
//
// Parameters:
//   - scale: the scale to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the scale option to a model
func WithScale(scale mgl32.Vec3) ModelBuilderOption {
	return func(m *modelImpl) {
		m.scale = scale
	}
}

// WithUniformScale is an option builder that sets the same scale factor on all axes.
//
// Parameters:
//   - scale: the uniform scale factor
//
// Returns:
//   - ModelBuilderOption: a function that applies the scale option to a model
func WithUniformScale(scale float32) ModelBuilderOption {
	return func(m *modelImpl) {
		m.scale = mgl32.Vec3{scale, scale, scale}
	}
}

// WithTint is an option builder that sets the Model's colour tint.
//
// Parameters:
//   - tint: the RGBA tint to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the tint option to a model
func WithTint(tint mgl32.Vec4) ModelBuilderOption {
	return func(m *modelImpl) {
		m.tint = tint
	}
}

// WithRenderMaterial is an option builder that sets the render-ready material for the Model.
//
// Parameters:
//   - mat: the material to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the material option to a model
func WithRenderMaterial(mat material.Material) ModelBuilderOption {
	return func(m *modelImpl) {
		m.renderMaterial = mat
	}
}

// WithModelProvider is an option builder that sets the per-object constants provider.
//
// Parameters:
//   - provider: the BindGroupProvider holding per-object GPU constants
//
// Returns:
//   - ModelBuilderOption: a function that applies the provider option to a model
func WithModelProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *modelImpl) {
		m.modelProvider = provider
	}
}
