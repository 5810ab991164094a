package scene

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestGPULightLayout(t *testing.T) {
	var l GPULight

	assert.Equal(t, uintptr(176), unsafe.Sizeof(l))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(l.Position))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(l.Colour))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(l.Facing))
	assert.Equal(t, uintptr(44), unsafe.Offsetof(l.CosHalf))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(l.View))
	assert.Equal(t, uintptr(112), unsafe.Offsetof(l.Proj))
}

func TestGPUFrameConstantsLayout(t *testing.T) {
	var fc GPUFrameConstants

	assert.Equal(t, uintptr(FrameConstantsSize), unsafe.Sizeof(fc))
	assert.Equal(t, FrameConstantsSize, fc.Size())
	assert.Len(t, fc.Marshal(), FrameConstantsSize)

	assert.Equal(t, uintptr(128), unsafe.Offsetof(fc.ViewProj))
	assert.Equal(t, uintptr(192), unsafe.Offsetof(fc.Lights))
	assert.Equal(t, uintptr(544), unsafe.Offsetof(fc.AmbientColour))
	assert.Equal(t, uintptr(560), unsafe.Offsetof(fc.CameraPosition))
	assert.Equal(t, uintptr(576), unsafe.Offsetof(fc.ScrollShift))
	assert.Equal(t, uintptr(580), unsafe.Offsetof(fc.Fading))
}

func TestGPUModelConstantsLayout(t *testing.T) {
	var mc GPUModelConstants

	assert.Equal(t, uintptr(ModelConstantsSize), unsafe.Sizeof(mc))
	assert.Equal(t, ModelConstantsSize, mc.Size())
	assert.Len(t, mc.Marshal(), ModelConstantsSize)
	assert.Equal(t, uintptr(64), unsafe.Offsetof(mc.Tint))
}
