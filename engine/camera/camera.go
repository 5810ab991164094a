package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/umbra3d/umbra/common"
)

const (
	defaultMoveSpeed     = 50.0
	defaultRotationSpeed = 2.0

	// pitchLimit keeps the camera from flipping over the vertical.
	pitchLimit = float32(math.Pi/2) - 0.01
)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	rotation mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	moveSpeed     float32
	rotationSpeed float32
}

// Camera is a free-fly perspective camera. It holds a world transform
// (position plus Euler rotation) and perspective settings, and derives its
// view matrix by inverting the world transform each query.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Rotation returns the camera's Euler rotation in radians.
	//
	// Returns:
	//   - mgl32.Vec3: the rotation (x pitch, y yaw, z roll)
	Rotation() mgl32.Vec3

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// WorldMatrix returns the camera's world transform built from position
	// and rotation.
	//
	// Returns:
	//   - mgl32.Mat4: the world matrix (column-major)
	WorldMatrix() mgl32.Mat4

	// ViewMatrix returns the inverse of the world transform.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection for the current
	// fov, aspect, and clip planes.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection multiplied by view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix (column-major)
	ViewProjectionMatrix() mgl32.Mat4

	// SetPosition sets the camera's world-space position.
	//
	// Parameters:
	//   - position: the new position
	SetPosition(position mgl32.Vec3)

	// SetRotation sets the camera's Euler rotation in radians.
	//
	// Parameters:
	//   - rotation: the new rotation (x pitch, y yaw, z roll)
	SetRotation(rotation mgl32.Vec3)

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio. Called on window resize.
	//
	// Parameters:
	//   - aspect: the aspect ratio (width / height)
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Control applies one frame of keyboard movement. Arrow keys rotate,
	// W/S move along the local forward axis, A/D strafe, Q/E move along the
	// local up axis. Movement scales with frameTime so speed is frame rate
	// independent.
	//
	// Parameters:
	//   - frameTime: seconds elapsed since the previous frame
	//   - keys: the key state to read held keys from
	Control(frameTime float32, keys *common.KeyTracker)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:            &sync.Mutex{},
		fov:           mgl32.DegToRad(45.0),
		aspect:        4.0 / 3.0,
		near:          0.1,
		far:           10000.0,
		moveSpeed:     defaultMoveSpeed,
		rotationSpeed: defaultRotationSpeed,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) Rotation() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) WorldMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldMatrix()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.InverseAffine(c.worldMatrix())
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Perspective(c.fov, c.aspect, c.near, c.far)
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	proj := common.Perspective(c.fov, c.aspect, c.near, c.far)
	view := common.InverseAffine(c.worldMatrix())
	return proj.Mul4(view)
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
}

func (c *cameraImpl) SetRotation(rotation mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = rotation
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *cameraImpl) Control(frameTime float32, keys *common.KeyTracker) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rot := c.rotationSpeed * frameTime
	if keys.IsDown(common.KeyUp) {
		c.rotation[0] -= rot
	}
	if keys.IsDown(common.KeyDown) {
		c.rotation[0] += rot
	}
	if keys.IsDown(common.KeyLeft) {
		c.rotation[1] -= rot
	}
	if keys.IsDown(common.KeyRight) {
		c.rotation[1] += rot
	}
	c.rotation[0] = mgl32.Clamp(c.rotation[0], -pitchLimit, pitchLimit)

	// Local axes come from the world matrix columns so movement follows the
	// direction the camera currently faces.
	world := c.worldMatrix()
	right := mgl32.Vec3{world[0], world[1], world[2]}
	up := mgl32.Vec3{world[4], world[5], world[6]}
	forward := mgl32.Vec3{world[8], world[9], world[10]}

	move := c.moveSpeed * frameTime
	if keys.IsDown(common.KeyW) {
		c.position = c.position.Add(forward.Mul(move))
	}
	if keys.IsDown(common.KeyS) {
		c.position = c.position.Sub(forward.Mul(move))
	}
	if keys.IsDown(common.KeyD) {
		c.position = c.position.Add(right.Mul(move))
	}
	if keys.IsDown(common.KeyA) {
		c.position = c.position.Sub(right.Mul(move))
	}
	if keys.IsDown(common.KeyE) {
		c.position = c.position.Add(up.Mul(move))
	}
	if keys.IsDown(common.KeyQ) {
		c.position = c.position.Sub(up.Mul(move))
	}
}

// worldMatrix builds the camera transform. Caller must hold the mutex.
func (c *cameraImpl) worldMatrix() mgl32.Mat4 {
	return common.WorldTransform(c.position, c.rotation, mgl32.Vec3{1, 1, 1})
}
