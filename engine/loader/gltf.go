package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/umbra3d/umbra/engine/model"
)

// loadGLTFMesh parses a glTF or GLB file into a single Mesh. All primitives
// across all meshes in the document are merged into one vertex and index
// buffer, with indices offset by the running vertex count.
//
// Reference: https://pkg.go.dev/github.com/qmuntal/gltf
//
// Parameters:
//   - path: the glTF/GLB file path
//
// Returns:
//   - model.Mesh: the merged mesh
//   - error: error if parsing fails or the file contains no geometry
func loadGLTFMesh(path string) (model.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF document: %w", err)
	}

	var vertices []model.GPUVertex
	var indices []uint32

	for _, msh := range doc.Meshes {
		for _, primitive := range msh.Primitives {
			if primitive.Indices == nil {
				continue
			}

			posIdx, ok := primitive.Attributes["POSITION"]
			if !ok {
				continue
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], [][3]float32(nil))
			if err != nil {
				return nil, fmt.Errorf("failed to read positions for mesh %q: %w", msh.Name, err)
			}

			normals := make([][3]float32, 0)
			if normIdx, ok := primitive.Attributes["NORMAL"]; ok {
				normals, err = modeler.ReadNormal(doc, doc.Accessors[normIdx], [][3]float32(nil))
				if err != nil {
					return nil, fmt.Errorf("failed to read normals for mesh %q: %w", msh.Name, err)
				}
			}

			uvs := make([][2]float32, 0)
			if uvIdx, ok := primitive.Attributes["TEXCOORD_0"]; ok {
				uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], [][2]float32(nil))
				if err != nil {
					return nil, fmt.Errorf("failed to read texture coords for mesh %q: %w", msh.Name, err)
				}
			}

			primitiveIndices, err := modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], []uint32(nil))
			if err != nil {
				return nil, fmt.Errorf("failed to read indices for mesh %q: %w", msh.Name, err)
			}

			indexOffset := uint32(len(vertices))
			for i, pos := range positions {
				v := model.GPUVertex{Position: pos}
				if i < len(normals) {
					v.Normal = normals[i]
				}
				if i < len(uvs) {
					v.TexCoord = uvs[i]
				}
				vertices = append(vertices, v)
			}
			for _, idx := range primitiveIndices {
				indices = append(indices, idx+indexOffset)
			}
		}
	}

	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("glTF document %s contains no indexed geometry", path)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return model.NewMesh(
		model.WithMeshName(name),
		model.WithVertices(vertices),
		model.WithIndices(indices),
	), nil
}
