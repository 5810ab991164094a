package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectDepth(proj mgl32.Mat4, z float32) float32 {
	clip := proj.Mul4x1(mgl32.Vec4{0, 0, z, 1})
	return clip.Z() / clip.W()
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(mgl32.DegToRad(45), 4.0/3.0, 0.1, 100)

	// WebGPU clip space: depth runs 0 at the near plane to 1 at the far plane.
	// The camera looks down -Z.
	assert.InDelta(t, 0.0, projectDepth(proj, -0.1), 1e-5)
	assert.InDelta(t, 1.0, projectDepth(proj, -100), 1e-4)

	mid := projectDepth(proj, -50)
	assert.Greater(t, mid, float32(0.0))
	assert.Less(t, mid, float32(1.0))
}

func TestPerspectiveAspect(t *testing.T) {
	proj := Perspective(mgl32.DegToRad(60), 2.0, 0.1, 100)
	// Horizontal scale is the vertical scale divided by the aspect ratio.
	assert.InDelta(t, proj[5]/2.0, proj[0], 1e-6)
}

func TestInverseAffineRoundTrip(t *testing.T) {
	m := WorldTransform(
		mgl32.Vec3{3, -7, 12},
		mgl32.Vec3{0.4, 1.2, -0.3},
		mgl32.Vec3{2, 2, 2},
	)
	identity := m.Mul4(InverseAffine(m))

	expected := mgl32.Ident4()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, expected[i], identity[i], 1e-4)
	}
}

func TestWorldTransformTranslation(t *testing.T) {
	m := WorldTransform(mgl32.Vec3{5, 10, -3}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})

	assert.InDelta(t, 5.0, m[12], 1e-6)
	assert.InDelta(t, 10.0, m[13], 1e-6)
	assert.InDelta(t, -3.0, m[14], 1e-6)
}

func TestWorldTransformRotationOrder(t *testing.T) {
	// A yaw of 90 degrees turns local +Z into world +X.
	m := WorldTransform(mgl32.Vec3{}, mgl32.Vec3{0, math.Pi / 2, 0}, mgl32.Vec3{1, 1, 1})
	forward := ForwardAxis(m)

	assert.InDelta(t, 1.0, forward.X(), 1e-5)
	assert.InDelta(t, 0.0, forward.Y(), 1e-5)
	assert.InDelta(t, 0.0, forward.Z(), 1e-5)
}

func TestFaceTarget(t *testing.T) {
	tests := []struct {
		name     string
		position mgl32.Vec3
		target   mgl32.Vec3
		pitch    float32
		yaw      float32
	}{
		{"straight ahead", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 10}, 0, 0},
		{"to the right", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 0, 0}, 0, math.Pi / 2},
		{"straight down", mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 0, 0}, math.Pi / 2, 0},
		{"behind", mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0}, 0, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rot := FaceTarget(tt.position, tt.target)
			assert.InDelta(t, tt.pitch, rot.X(), 1e-5)
			assert.InDelta(t, tt.yaw, rot.Y(), 1e-5)
			assert.Zero(t, rot.Z())
		})
	}
}

func TestFaceTargetAimsForwardAxis(t *testing.T) {
	position := mgl32.Vec3{30, 20, 0}
	target := mgl32.Vec3{15, 0, 0}

	rot := FaceTarget(position, target)
	world := WorldTransform(position, rot, mgl32.Vec3{1, 1, 1})
	forward := ForwardAxis(world)
	expected := target.Sub(position).Normalize()

	assert.InDelta(t, expected.X(), forward.X(), 1e-5)
	assert.InDelta(t, expected.Y(), forward.Y(), 1e-5)
	assert.InDelta(t, expected.Z(), forward.Z(), 1e-5)
}

func TestCosDeg(t *testing.T) {
	assert.InDelta(t, 1.0, CosDeg(0), 1e-6)
	assert.InDelta(t, math.Sqrt2/2, CosDeg(45), 1e-6)
	assert.InDelta(t, 0.0, CosDeg(90), 1e-6)
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32(nil)))

	data := []float32{1, 2, 3}
	raw := SliceToBytes(data)
	require.Len(t, raw, 12)
	// Little-endian float32(1.0) is 0x3f800000.
	assert.Equal(t, byte(0x80), raw[2])
	assert.Equal(t, byte(0x3f), raw[3])
}

func TestStructToBytes(t *testing.T) {
	type block struct {
		A [16]float32
		B [4]float32
	}
	v := block{}
	raw := StructToBytes(&v)
	assert.Len(t, raw, 80)
}
