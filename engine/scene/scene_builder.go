package scene

import "github.com/go-gl/mathgl/mgl32"

// SceneBuilderOption defines the method signature for options when constructing a new Scene.
type SceneBuilderOption func(*scene)

// WithAmbientColour sets the scene's ambient light colour.
//
// Parameters:
//   - colour: the ambient RGB colour
//
// Returns:
//   - SceneBuilderOption: the option function
func WithAmbientColour(colour mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.ambientColour = colour
	}
}

// WithSpecularPower sets the Blinn-Phong specular exponent shared by the lit
// techniques.
//
// Parameters:
//   - power: the specular exponent
//
// Returns:
//   - SceneBuilderOption: the option function
func WithSpecularPower(power float32) SceneBuilderOption {
	return func(s *scene) {
		s.specularPower = power
	}
}

// WithShadowMapResolution sets the square resolution of each light's shadow
// map texture.
//
// Parameters:
//   - resolution: the shadow map width and height in texels
//
// Returns:
//   - SceneBuilderOption: the option function
func WithShadowMapResolution(resolution int) SceneBuilderOption {
	return func(s *scene) {
		if resolution > 0 {
			s.shadowMapResolution = resolution
		}
	}
}

// WithShadowClip sets the near and far clip planes used for the lights'
// shadow projections.
//
// Parameters:
//   - near: the near clip distance
//   - far: the far clip distance
//
// Returns:
//   - SceneBuilderOption: the option function
func WithShadowClip(near, far float32) SceneBuilderOption {
	return func(s *scene) {
		s.shadowNear = near
		s.shadowFar = far
	}
}
