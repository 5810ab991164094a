package loader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaneMesh(t *testing.T) {
	msh := NewPlaneMesh(400, 10)

	require.Len(t, msh.Vertices(), 4)
	assert.Equal(t, 6, msh.IndexCount())

	for _, v := range msh.Vertices() {
		assert.Equal(t, [3]float32{0, 1, 0}, v.Normal)
	}

	// Corners sit at half the size and UVs tile.
	var maxX, maxU float32
	for _, v := range msh.Vertices() {
		if v.Position[0] > maxX {
			maxX = v.Position[0]
		}
		if v.TexCoord[0] > maxU {
			maxU = v.TexCoord[0]
		}
	}
	assert.InDelta(t, 200.0, maxX, 1e-4)
	assert.InDelta(t, 10.0, maxU, 1e-4)
}

func TestNewCubeMesh(t *testing.T) {
	msh := NewCubeMesh(8)

	assert.Len(t, msh.Vertices(), 24)
	assert.Equal(t, 36, msh.IndexCount())
	assert.InDelta(t, mgl32.Vec3{4, 4, 4}.Len(), msh.BoundingRadius(), 1e-4)

	// Per-face normals are unit length.
	for _, v := range msh.Vertices() {
		n := mgl32.Vec3{v.Normal[0], v.Normal[1], v.Normal[2]}
		assert.InDelta(t, 1.0, n.Len(), 1e-5)
	}
}

func TestNewSphereMesh(t *testing.T) {
	slices, stacks := 16, 8
	msh := NewSphereMesh(6, slices, stacks)

	assert.Len(t, msh.Vertices(), (slices+1)*(stacks+1))
	assert.Equal(t, slices*stacks*6, msh.IndexCount())

	// Every vertex sits on the sphere surface.
	for _, v := range msh.Vertices() {
		p := mgl32.Vec3{v.Position[0], v.Position[1], v.Position[2]}
		assert.InDelta(t, 6.0, p.Len(), 1e-4)
	}

	// Indices stay in range.
	for _, idx := range msh.Indices() {
		assert.Less(t, int(idx), len(msh.Vertices()))
	}
}

func TestLoaderRegisterAndGet(t *testing.T) {
	l := NewLoader()
	msh := NewCubeMesh(2)

	require.NoError(t, l.RegisterMesh("cube", msh))

	assert.Equal(t, msh, l.GetMesh("cube"))
	assert.Nil(t, l.GetMesh("missing"))

	assets := l.Assets()
	require.Len(t, assets, 1)
	assert.Equal(t, "cube", assets[0].Name)
	assert.Equal(t, AssetKindMesh, assets[0].Kind)
}

func TestLoaderRejectsUnsupportedMeshFormat(t *testing.T) {
	l := NewLoader()

	_, err := l.LoadMesh("model.obj")
	assert.ErrorContains(t, err, "unsupported mesh format")
}

func TestLoaderLoadTextureMissingFile(t *testing.T) {
	l := NewLoader()

	_, err := l.LoadTexture("does-not-exist.png")
	assert.Error(t, err)
}
