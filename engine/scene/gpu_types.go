package scene

import (
	"unsafe"

	"github.com/umbra3d/umbra/common"
)

// MaxLights is the number of spotlights the frame constants carry. The WGSL
// frame uniform declares a fixed-size light array, so the scene rejects
// additional lights rather than silently dropping them.
const MaxLights = 2

// FrameConstantsSize is the byte size of GPUFrameConstants.
const FrameConstantsSize = 592

// ModelConstantsSize is the byte size of GPUModelConstants.
const ModelConstantsSize = 80

// LightViewProjSize is the byte size of the per-light depth pass uniform
// (a single mat4x4).
const LightViewProjSize = 64

// GPULight is the per-spotlight block inside GPUFrameConstants. Matches the
// WGSL Light struct layout exactly (176 bytes, std140 aligned).
type GPULight struct {
	Position [3]float32 // offset   0: world-space light position (12 bytes)
	Pad0     float32    // offset  12: std140 vec3 padding
	Colour   [3]float32 // offset  16: light colour pre-multiplied by strength (12 bytes)
	Pad1     float32    // offset  28: std140 vec3 padding
	Facing   [3]float32 // offset  32: normalized facing axis for the cone test (12 bytes)
	CosHalf  float32    // offset  44: cosine of half the cone angle (4 bytes)
	View     [16]float32 // offset  48: light view matrix for shadow sampling (64 bytes)
	Proj     [16]float32 // offset 112: light projection matrix for shadow sampling (64 bytes)
}

// GPUFrameConstants is the per-frame uniform block shared by every render
// pipeline. The view-projection product is precomputed on the CPU so vertex
// shaders do a single matrix multiply. Matches the WGSL FrameConstants struct
// layout exactly (592 bytes, std140 aligned).
type GPUFrameConstants struct {
	View     [16]float32        // offset   0: camera view matrix (64 bytes)
	Proj     [16]float32        // offset  64: camera projection matrix (64 bytes)
	ViewProj [16]float32        // offset 128: projection * view (64 bytes)
	Lights   [MaxLights]GPULight // offset 192: spotlight blocks (352 bytes)

	AmbientColour [3]float32 // offset 544: scene ambient colour (12 bytes)
	SpecularPower float32    // offset 556: Blinn-Phong specular exponent (4 bytes)

	CameraPosition [3]float32 // offset 560: world-space camera position (12 bytes)
	Wiggle         float32    // offset 572: accumulator driving the vertex wiggle shader (4 bytes)

	ScrollShift float32    // offset 576: accumulator driving UV scrolling (4 bytes)
	Fading      float32    // offset 580: 0..1 blend factor for the texture-mix shader (4 bytes)
	Pad0        [2]float32 // offset 584: tail padding to a 16-byte boundary
}

// Size returns the size of the GPUFrameConstants struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUFrameConstants) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal reinterprets the struct as a byte slice for GPU upload. The
// returned slice shares memory with the struct.
//
// Returns:
//   - []byte: 592-byte view ready for GPU upload.
func (g *GPUFrameConstants) Marshal() []byte {
	return common.StructToBytes(g)
}

// GPUModelConstants is the per-object uniform block. Matches the WGSL
// ModelConstants struct layout exactly (80 bytes, std140 aligned).
type GPUModelConstants struct {
	World [16]float32 // offset  0: model-to-world transform (64 bytes)
	Tint  [4]float32  // offset 64: RGBA colour tint (16 bytes)
}

// Size returns the size of the GPUModelConstants struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUModelConstants) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal reinterprets the struct as a byte slice for GPU upload. The
// returned slice shares memory with the struct.
//
// Returns:
//   - []byte: 80-byte view ready for GPU upload.
func (g *GPUModelConstants) Marshal() []byte {
	return common.StructToBytes(g)
}
