package light

import "github.com/go-gl/mathgl/mgl32"

// LightBuilderOption is a functional option for configuring a Light via NewLight.
type LightBuilderOption func(*lightImpl)

// WithName is an option builder that sets the light identifier.
//
// Parameters:
//   - name: the light name
//
// Returns:
//   - LightBuilderOption: a function that applies the name option to a light
func WithName(name string) LightBuilderOption {
	return func(l *lightImpl) {
		l.name = name
	}
}

// WithPosition is an option builder that sets the light's world-space position.
//
// Parameters:
//   - position: the position to set
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a light
func WithPosition(position mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = position
	}
}

// WithRotation is an option builder that sets the light's Euler rotation in radians.
//
// Parameters:
//   - rotation: the rotation to set (x pitch, y yaw, z roll)
//
// Returns:
//   - LightBuilderOption: a function that applies the rotation option to a light
func WithRotation(rotation mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.rotation = rotation
	}
}

// WithColour is an option builder that sets the light's RGB colour.
//
// Parameters:
//   - colour: colour as (r, g, b)
//
// Returns:
//   - LightBuilderOption: a function that applies the colour option to a light
func WithColour(colour mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.colour = colour
	}
}

// WithStrength is an option builder that sets the light's intensity multiplier.
//
// Parameters:
//   - strength: the strength value
//
// Returns:
//   - LightBuilderOption: a function that applies the strength option to a light
func WithStrength(strength float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.strength = strength
	}
}

// WithConeAngle is an option builder that sets the full cone angle in degrees.
//
// Parameters:
//   - degrees: the cone angle in degrees
//
// Returns:
//   - LightBuilderOption: a function that applies the cone angle option to a light
func WithConeAngle(degrees float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.coneAngle = degrees
	}
}
