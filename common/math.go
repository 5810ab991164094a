package common

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective creates a perspective projection matrix for WebGPU clip space,
// where depth runs [0, 1] rather than OpenGL's [-1, 1]. mgl32.Perspective
// targets the GL convention, so the renderer must use this variant or every
// depth comparison (including shadow sampling) is wrong.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the projection matrix (column-major)
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// InverseAffine computes the inverse of an affine transform matrix (rotation,
// scale, translation, no projection row). Exact for model/world matrices and
// better conditioned than a general 4x4 inverse. This is the operation that
// turns a spotlight's world matrix into a camera-style view matrix.
//
// Parameters:
//   - m: source affine matrix (column-major)
//
// Returns:
//   - mgl32.Mat4: the inverted matrix
func InverseAffine(m mgl32.Mat4) mgl32.Mat4 {
	r := mgl32.Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
	inv := r.Inv()
	t := inv.Mul3x1(mgl32.Vec3{m[12], m[13], m[14]}).Mul(-1)

	return mgl32.Mat4{
		inv[0], inv[1], inv[2], 0,
		inv[3], inv[4], inv[5], 0,
		inv[6], inv[7], inv[8], 0,
		t[0], t[1], t[2], 1,
	}
}

// ForwardAxis extracts the normalized local Z (facing) axis from a world
// matrix. Spotlights aim along this axis.
//
// Parameters:
//   - m: the world matrix (column-major)
//
// Returns:
//   - mgl32.Vec3: the unit forward vector
func ForwardAxis(m mgl32.Mat4) mgl32.Vec3 {
	return mgl32.Vec3{m[8], m[9], m[10]}.Normalize()
}

// CosDeg returns the cosine of an angle given in degrees.
//
// Parameters:
//   - degrees: the angle in degrees
//
// Returns:
//   - float32: cos(degrees)
func CosDeg(degrees float32) float32 {
	return float32(math.Cos(float64(mgl32.DegToRad(degrees))))
}

// WorldTransform builds a world matrix from position, Euler rotation, and
// scale. Rotation order is Y then X then Z, matching the scene's model and
// spotlight transforms, with translation applied last.
//
// Parameters:
//   - position: world-space translation
//   - rotation: Euler angles in radians (x pitch, y yaw, z roll)
//   - scale: per-axis scale factors
//
// Returns:
//   - mgl32.Mat4: the world matrix (column-major)
func WorldTransform(position, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(position[0], position[1], position[2])
	m = m.Mul4(mgl32.HomogRotate3DY(rotation[1]))
	m = m.Mul4(mgl32.HomogRotate3DX(rotation[0]))
	m = m.Mul4(mgl32.HomogRotate3DZ(rotation[2]))
	m = m.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
	return m
}

// FaceTarget returns Euler angles (pitch, yaw, zero roll) that orient the
// local Z axis from position toward target.
//
// Parameters:
//   - position: world-space position of the object
//   - target: world-space point to face
//
// Returns:
//   - mgl32.Vec3: Euler angles in radians
func FaceTarget(position, target mgl32.Vec3) mgl32.Vec3 {
	dir := target.Sub(position)
	horiz := float32(math.Sqrt(float64(dir[0]*dir[0] + dir[2]*dir[2])))
	pitch := float32(math.Atan2(float64(-dir[1]), float64(horiz)))
	yaw := float32(math.Atan2(float64(dir[0]), float64(dir[2])))
	return mgl32.Vec3{pitch, yaw, 0}
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}
