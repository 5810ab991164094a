package light

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(WithName("spot"))

	assert.Equal(t, "spot", l.Name())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Colour())
	assert.InDelta(t, 1.0, l.Strength(), 1e-6)
	assert.InDelta(t, 90.0, l.ConeAngle(), 1e-6)
}

func TestLightCosHalfAngle(t *testing.T) {
	l := NewLight(WithConeAngle(90))
	assert.InDelta(t, math.Sqrt2/2, l.CosHalfAngle(), 1e-6)

	l.SetConeAngle(60)
	assert.InDelta(t, math.Sqrt(3)/2, l.CosHalfAngle(), 1e-6)
}

func TestLightViewMatrixInvertsWorld(t *testing.T) {
	l := NewLight(
		WithPosition(mgl32.Vec3{30, 20, 0}),
		WithRotation(mgl32.Vec3{0.5, -1.1, 0}),
	)

	identity := l.WorldMatrix().Mul4(l.ViewMatrix())
	expected := mgl32.Ident4()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, expected[i], identity[i], 1e-4)
	}
}

func TestLightFaceTarget(t *testing.T) {
	l := NewLight(WithPosition(mgl32.Vec3{30, 20, 0}))
	target := mgl32.Vec3{15, 0, 0}
	l.FaceTarget(target)

	facing := l.Facing()
	expected := target.Sub(l.Position()).Normalize()

	assert.InDelta(t, expected.X(), facing.X(), 1e-5)
	assert.InDelta(t, expected.Y(), facing.Y(), 1e-5)
	assert.InDelta(t, expected.Z(), facing.Z(), 1e-5)
}

func TestLightProjectionIsSquare(t *testing.T) {
	l := NewLight(WithConeAngle(90))
	proj := l.ProjectionMatrix(0.1, 10000)

	// Shadow maps are square, so horizontal and vertical scales match.
	assert.InDelta(t, proj[5], proj[0], 1e-6)
	assert.InDelta(t, -1.0, proj[11], 1e-6)
}

func TestShadowMapReleaseNil(t *testing.T) {
	var sm *ShadowMap
	assert.NotPanics(t, func() { sm.Release() })
}
