package material

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umbra3d/umbra/common"
)

func encodeTestPNG(t *testing.T, w, h int) *common.ImportedTexture {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 50), G: uint8(y * 50), B: 0, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &common.ImportedTexture{Name: "test", Data: buf.Bytes(), MimeType: "image/png"}
}

func TestPointSampler(t *testing.T) {
	s := PointSampler()

	assert.Equal(t, wgpu.FilterModeNearest, s.MagFilter)
	assert.Equal(t, wgpu.FilterModeNearest, s.MinFilter)
	assert.Equal(t, wgpu.MipmapFilterModeNearest, s.MipmapFilter)
	assert.Equal(t, wgpu.AddressModeClampToEdge, s.AddressModeU)
	assert.Equal(t, wgpu.AddressModeClampToEdge, s.AddressModeV)
	assert.Equal(t, wgpu.AddressModeClampToEdge, s.AddressModeW)
}

func TestStagePairsSamplersWithTextures(t *testing.T) {
	m := NewMaterial("ramped",
		WithTexture(0, encodeTestPNG(t, 2, 2)),
		WithTexture(2, encodeTestPNG(t, 4, 1)),
		WithSamplerData(2, PointSampler()),
	)

	require.NoError(t, m.Stage())
	provider := m.BindGroupProvider()
	require.NotNil(t, provider)

	// Each texture stages at its binding with its sampler one binding up.
	tex0 := provider.TextureData(0)
	require.NotNil(t, tex0)
	assert.Equal(t, uint32(2), tex0.Width)
	assert.Len(t, tex0.Pixels, 2*2*4)

	ramp := provider.TextureData(2)
	require.NotNil(t, ramp)
	assert.Equal(t, uint32(4), ramp.Width)
	assert.Equal(t, uint32(1), ramp.Height)

	// The diffuse sampler falls back to linear filtering; the ramp sampler
	// overrides to nearest so the bands stay sharp.
	require.NotNil(t, provider.SamplerData(1))
	assert.Equal(t, wgpu.FilterModeLinear, provider.SamplerData(1).MagFilter)
	require.NotNil(t, provider.SamplerData(3))
	assert.Equal(t, wgpu.FilterModeNearest, provider.SamplerData(3).MagFilter)
}

func TestStageFailsOnUndecodableTexture(t *testing.T) {
	m := NewMaterial("broken",
		WithTexture(0, &common.ImportedTexture{Data: []byte("not an image")}),
	)

	assert.Error(t, m.Stage())
}
