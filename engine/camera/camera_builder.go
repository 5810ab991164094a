package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option for configuring a camera.
// Use the With* functions to create options.
type CameraBuilderOption func(c *cameraImpl)

// WithPosition sets the camera's initial world-space position.
//
// Parameters:
//   - position: the position
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithRotation sets the camera's initial Euler rotation in radians.
//
// Parameters:
//   - rotation: the rotation (x pitch, y yaw, z roll)
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithRotation(rotation mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotation = rotation
	}
}

// WithFov sets the vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithMoveSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithMoveSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.moveSpeed = speed
	}
}

// WithRotationSpeed sets the rotation speed in radians per second.
//
// Parameters:
//   - speed: rotation speed
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithRotationSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotationSpeed = speed
	}
}
