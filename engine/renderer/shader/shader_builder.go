package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderOption configures a shader during construction.
type ShaderOption func(*shader)

// WithEntryPoint overrides the default "main" entry point name.
//
// Parameters:
//   - name: the WGSL function name to use as the stage entry point
//
// Returns:
//   - ShaderOption: the option to apply
func WithEntryPoint(name string) ShaderOption {
	return func(s *shader) {
		if name != "" {
			s.entryPoint = name
		}
	}
}

// WithBindGroupLayout declares the bind group layout for one group index.
// The entries must mirror the @group(n) bindings in the WGSL source.
//
// Parameters:
//   - group: the bind group index
//   - desc: the layout descriptor for that group
//
// Returns:
//   - ShaderOption: the option to apply
func WithBindGroupLayout(group int, desc wgpu.BindGroupLayoutDescriptor) ShaderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = desc
	}
}

// WithVertexLayouts declares the vertex buffer layouts consumed by a vertex shader.
//
// Parameters:
//   - layouts: one layout per vertex buffer slot
//
// Returns:
//   - ShaderOption: the option to apply
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}
