package model

import (
	"github.com/umbra3d/umbra/common"
	"github.com/umbra3d/umbra/engine/renderer/bind_group_provider"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name           string
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
	meshProvider   bind_group_provider.BindGroupProvider
}

// Mesh is a GPU-ready geometry container. It holds the raw vertex and index
// data plus the BindGroupProvider that owns the uploaded GPU buffers. Meshes
// are shared: many Model instances can reference the same Mesh.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices retrieves the raw vertex data.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices retrieves the triangle index data.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// IndexCount returns the number of indices.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// VertexBytes returns the vertex data as a byte slice for GPU upload.
	//
	// Returns:
	//   - []byte: byte view of the vertex data
	VertexBytes() []byte

	// IndexBytes returns the index data as a byte slice for GPU upload.
	//
	// Returns:
	//   - []byte: byte view of the index data
	IndexBytes() []byte

	// BoundingRadius returns the bounding sphere radius, measured as the
	// maximum vertex distance from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh buffers.
	// Returns nil before the mesh has been uploaded.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider or nil
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetMeshProvider assigns the BindGroupProvider holding GPU mesh buffers.
	//
	// Parameters:
	//   - provider: the mesh provider to set
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh with the specified options applied.
// The bounding radius is computed from the vertex data unless overridden.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: the configured mesh
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{}
	for _, opt := range options {
		opt(m)
	}
	if m.boundingRadius == 0 {
		m.boundingRadius = ComputeBoundingRadius(m.vertices)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Vertices() []GPUVertex {
	return m.vertices
}

func (m *mesh) Indices() []uint32 {
	return m.indices
}

func (m *mesh) IndexCount() int {
	return len(m.indices)
}

func (m *mesh) VertexBytes() []byte {
	return common.SliceToBytes(m.vertices)
}

func (m *mesh) IndexBytes() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *mesh) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *mesh) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *mesh) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}
