package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/umbra3d/umbra/common"
)

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()

	assert.InDelta(t, mgl32.DegToRad(45), cam.Fov(), 1e-6)
	assert.InDelta(t, 4.0/3.0, cam.Aspect(), 1e-6)
	assert.InDelta(t, 0.1, cam.Near(), 1e-6)
	assert.InDelta(t, 10000.0, cam.Far(), 1e-3)
	assert.Equal(t, mgl32.Vec3{}, cam.Position())
}

func TestCameraViewMatrixInvertsWorld(t *testing.T) {
	cam := NewCamera(
		WithPosition(mgl32.Vec3{15, 30, -70}),
		WithRotation(mgl32.Vec3{0.22, 0, 0}),
	)

	identity := cam.WorldMatrix().Mul4(cam.ViewMatrix())
	expected := mgl32.Ident4()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, expected[i], identity[i], 1e-5)
	}
}

func TestCameraViewProjection(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{0, 5, -20}))

	expected := cam.ProjectionMatrix().Mul4(cam.ViewMatrix())
	got := cam.ViewProjectionMatrix()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, expected[i], got[i], 1e-5)
	}
}

func TestCameraControlMovesForward(t *testing.T) {
	cam := NewCamera(WithMoveSpeed(10))
	keys := common.NewKeyTracker()
	keys.Press(common.KeyW)

	cam.Control(0.5, keys)

	// Default orientation faces local +Z.
	pos := cam.Position()
	assert.InDelta(t, 0.0, pos.X(), 1e-6)
	assert.InDelta(t, 0.0, pos.Y(), 1e-6)
	assert.InDelta(t, 5.0, pos.Z(), 1e-6)
}

func TestCameraControlStrafeAndVertical(t *testing.T) {
	cam := NewCamera(WithMoveSpeed(10))
	keys := common.NewKeyTracker()
	keys.Press(common.KeyD)
	keys.Press(common.KeyE)

	cam.Control(1, keys)

	pos := cam.Position()
	assert.InDelta(t, 10.0, pos.X(), 1e-5)
	assert.InDelta(t, 10.0, pos.Y(), 1e-5)
	assert.InDelta(t, 0.0, pos.Z(), 1e-5)
}

func TestCameraControlRotation(t *testing.T) {
	cam := NewCamera(WithRotationSpeed(1))
	keys := common.NewKeyTracker()
	keys.Press(common.KeyRight)

	cam.Control(0.25, keys)

	assert.InDelta(t, 0.25, cam.Rotation().Y(), 1e-6)
}

func TestCameraControlPitchClamp(t *testing.T) {
	cam := NewCamera(WithRotationSpeed(100))
	keys := common.NewKeyTracker()
	keys.Press(common.KeyDown)

	cam.Control(1, keys)

	assert.LessOrEqual(t, cam.Rotation().X(), pitchLimit)
}

func TestCameraControlNoKeys(t *testing.T) {
	cam := NewCamera(WithPosition(mgl32.Vec3{1, 2, 3}))

	cam.Control(1, common.NewKeyTracker())

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position())
	assert.Equal(t, mgl32.Vec3{}, cam.Rotation())
}
