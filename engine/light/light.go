package light

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/umbra3d/umbra/common"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	name      string
	position  mgl32.Vec3
	rotation  mgl32.Vec3
	colour    mgl32.Vec3
	strength  float32
	coneAngle float32

	shadowMap *ShadowMap
}

// Light is a shadow-casting spotlight. It carries a model-style world
// transform (position plus Euler rotation, aiming along local Z), a colour
// and strength, and a cone angle. The same transform doubles as a camera for
// the light's shadow depth pass: the view matrix is the inverse of the world
// matrix and the projection uses the cone angle as field of view with a
// square aspect.
type Light interface {
	// Name retrieves the light identifier.
	//
	// Returns:
	//   - string: the light name
	Name() string

	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Rotation returns the light's Euler rotation in radians.
	//
	// Returns:
	//   - mgl32.Vec3: the rotation (x pitch, y yaw, z roll)
	Rotation() mgl32.Vec3

	// Colour returns the RGB colour of the light.
	//
	// Returns:
	//   - mgl32.Vec3: colour as (r, g, b)
	Colour() mgl32.Vec3

	// Strength returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the strength value
	Strength() float32

	// ConeAngle returns the full cone angle of the spotlight in degrees.
	//
	// Returns:
	//   - float32: the cone angle in degrees
	ConeAngle() float32

	// CosHalfAngle returns the cosine of half the cone angle. The pixel
	// shaders compare this against the dot product of the light facing and
	// the light-to-fragment direction to clip lighting outside the cone.
	//
	// Returns:
	//   - float32: cos(coneAngle / 2)
	CosHalfAngle() float32

	// WorldMatrix builds the light's world transform from position and rotation.
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix (column-major)
	WorldMatrix() mgl32.Mat4

	// ViewMatrix returns the inverse of the world transform. Rendering the
	// scene with this view produces the light's shadow depth map.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns a square-aspect perspective projection whose
	// field of view equals the cone angle, so the shadow map covers exactly
	// the lit cone.
	//
	// Parameters:
	//   - near: near clipping plane distance
	//   - far: far clipping plane distance
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix(near, far float32) mgl32.Mat4

	// Facing returns the normalized world-space direction the light points in
	// (the local Z axis of the world transform).
	//
	// Returns:
	//   - mgl32.Vec3: the unit facing vector
	Facing() mgl32.Vec3

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - position: the new position
	SetPosition(position mgl32.Vec3)

	// SetRotation sets the light's Euler rotation in radians.
	//
	// Parameters:
	//   - rotation: the new rotation (x pitch, y yaw, z roll)
	SetRotation(rotation mgl32.Vec3)

	// SetColour sets the RGB colour of the light.
	//
	// Parameters:
	//   - colour: colour as (r, g, b)
	SetColour(colour mgl32.Vec3)

	// SetStrength sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - strength: the strength value
	SetStrength(strength float32)

	// SetConeAngle sets the full cone angle in degrees.
	//
	// Parameters:
	//   - degrees: the cone angle in degrees
	SetConeAngle(degrees float32)

	// FaceTarget rotates the light so its facing axis points at a
	// world-space point.
	//
	// Parameters:
	//   - target: the point to face
	FaceTarget(target mgl32.Vec3)

	// ShadowMap retrieves the light's shadow depth resources, or nil before
	// they have been created.
	//
	// Returns:
	//   - *ShadowMap: the shadow map or nil
	ShadowMap() *ShadowMap

	// SetShadowMap assigns the light's shadow depth resources.
	//
	// Parameters:
	//   - sm: the shadow map to set
	SetShadowMap(sm *ShadowMap)
}

var _ Light = &lightImpl{}

// NewLight creates a new spotlight with sensible defaults and any provided
// options applied. Defaults: white colour, strength 1, 90 degree cone.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		colour:    mgl32.Vec3{1, 1, 1},
		strength:  1.0,
		coneAngle: 90.0,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Name() string {
	return l.name
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Rotation() mgl32.Vec3 {
	return l.rotation
}

func (l *lightImpl) Colour() mgl32.Vec3 {
	return l.colour
}

func (l *lightImpl) Strength() float32 {
	return l.strength
}

func (l *lightImpl) ConeAngle() float32 {
	return l.coneAngle
}

func (l *lightImpl) CosHalfAngle() float32 {
	return common.CosDeg(l.coneAngle / 2)
}

func (l *lightImpl) WorldMatrix() mgl32.Mat4 {
	return common.WorldTransform(l.position, l.rotation, mgl32.Vec3{1, 1, 1})
}

func (l *lightImpl) ViewMatrix() mgl32.Mat4 {
	return common.InverseAffine(l.WorldMatrix())
}

func (l *lightImpl) ProjectionMatrix(near, far float32) mgl32.Mat4 {
	return common.Perspective(mgl32.DegToRad(l.coneAngle), 1.0, near, far)
}

func (l *lightImpl) Facing() mgl32.Vec3 {
	return common.ForwardAxis(l.WorldMatrix())
}

func (l *lightImpl) SetPosition(position mgl32.Vec3) {
	l.position = position
}

func (l *lightImpl) SetRotation(rotation mgl32.Vec3) {
	l.rotation = rotation
}

func (l *lightImpl) SetColour(colour mgl32.Vec3) {
	l.colour = colour
}

func (l *lightImpl) SetStrength(strength float32) {
	l.strength = strength
}

func (l *lightImpl) SetConeAngle(degrees float32) {
	l.coneAngle = degrees
}

func (l *lightImpl) FaceTarget(target mgl32.Vec3) {
	l.rotation = common.FaceTarget(l.position, target)
}

func (l *lightImpl) ShadowMap() *ShadowMap {
	return l.shadowMap
}

func (l *lightImpl) SetShadowMap(sm *ShadowMap) {
	l.shadowMap = sm
}
