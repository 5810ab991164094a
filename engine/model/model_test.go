package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umbra3d/umbra/common"
)

func quadVertices() []GPUVertex {
	return []GPUVertex{
		{Position: [3]float32{-1, 0, -1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{1, 0, -1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{1, 0, 1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 1}},
		{Position: [3]float32{-1, 0, 1}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 1}},
	}
}

func TestGPUVertexSize(t *testing.T) {
	v := GPUVertex{}
	assert.Equal(t, uint64(32), v.Size())
	assert.Len(t, v.Marshal(), 32)

	layout := VertexBufferLayout()
	assert.Equal(t, uint64(32), layout.ArrayStride)
	require.Len(t, layout.Attributes, 3)
	assert.Equal(t, uint64(12), layout.Attributes[1].Offset)
	assert.Equal(t, uint64(24), layout.Attributes[2].Offset)
}

func TestComputeBoundingRadius(t *testing.T) {
	radius := ComputeBoundingRadius(quadVertices())
	assert.InDelta(t, mgl32.Vec3{1, 0, 1}.Len(), radius, 1e-5)

	assert.Zero(t, ComputeBoundingRadius(nil))
}

func TestNewMesh(t *testing.T) {
	msh := NewMesh(
		WithMeshName("quad"),
		WithVertices(quadVertices()),
		WithIndices([]uint32{0, 2, 1, 0, 3, 2}),
	)

	assert.Equal(t, "quad", msh.Name())
	assert.Equal(t, 6, msh.IndexCount())
	assert.Len(t, msh.VertexBytes(), 4*32)
	assert.Len(t, msh.IndexBytes(), 6*4)
	// Radius is derived from the vertices when not given explicitly.
	assert.InDelta(t, mgl32.Vec3{1, 0, 1}.Len(), msh.BoundingRadius(), 1e-5)
}

func TestNewModelDefaults(t *testing.T) {
	mdl := NewModel(WithName("thing"))

	assert.Equal(t, "thing", mdl.Name())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, mdl.Scale())
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, mdl.Tint())
}

func TestModelWorldMatrix(t *testing.T) {
	mdl := NewModel(
		WithPosition(mgl32.Vec3{15, 0, 0}),
		WithRotation(mgl32.Vec3{0, mgl32.DegToRad(215), 0}),
		WithUniformScale(4),
	)

	expected := common.WorldTransform(
		mgl32.Vec3{15, 0, 0},
		mgl32.Vec3{0, mgl32.DegToRad(215), 0},
		mgl32.Vec3{4, 4, 4},
	)
	got := mdl.WorldMatrix()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, expected[i], got[i], 1e-5)
	}
}

func TestModelFaceTarget(t *testing.T) {
	mdl := NewModel(WithPosition(mgl32.Vec3{0, 10, 0}))
	mdl.FaceTarget(mgl32.Vec3{0, 0, 10})

	forward := common.ForwardAxis(mdl.WorldMatrix())
	expected := mgl32.Vec3{0, -10, 10}.Normalize()

	assert.InDelta(t, expected.X(), forward.X(), 1e-5)
	assert.InDelta(t, expected.Y(), forward.Y(), 1e-5)
	assert.InDelta(t, expected.Z(), forward.Z(), 1e-5)
}

func TestModelControl(t *testing.T) {
	mdl := NewModel()
	keys := common.NewKeyTracker()

	keys.Press(common.KeyI)
	mdl.Control(1, keys)
	keys.Release(common.KeyI)

	// Default orientation faces +Z, so I moves along +Z.
	assert.InDelta(t, float32(modelMoveSpeed), mdl.Position().Z(), 1e-4)

	keys.Press(common.KeyJ)
	mdl.Control(0.5, keys)
	assert.InDelta(t, -float32(modelRotationSpeed)*0.5, mdl.Rotation().Y(), 1e-5)
}
