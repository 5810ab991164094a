package loader

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/umbra3d/umbra/common"
	"github.com/umbra3d/umbra/engine/model"
	"github.com/umbra3d/umbra/engine/renderer"
	"github.com/umbra3d/umbra/engine/renderer/bind_group_provider"
)

// AssetKind identifies the type of a registered asset.
type AssetKind int

const (
	// AssetKindMesh is a loaded or generated mesh.
	AssetKindMesh AssetKind = iota

	// AssetKindTexture is a loaded image file.
	AssetKindTexture
)

// Asset is a registry entry for a loaded resource. Every mesh and texture the
// loader touches gets a stable ID so callers can refer to assets without
// holding paths.
type Asset struct {
	// ID is the unique identifier assigned at load time.
	ID uuid.UUID

	// Name is the cache key (file path for loaded assets, mesh name for
	// generated ones).
	Name string

	// Kind is the asset type.
	Kind AssetKind
}

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	renderer renderer.Renderer

	meshCache    map[string]model.Mesh
	textureCache map[string]*common.ImportedTexture
	assets       map[string]Asset
}

// Loader loads and caches meshes and textures. Mesh files are parsed from
// glTF/GLB, uploaded to the GPU when a Renderer is attached, and cached by
// path so repeated loads are free. Procedurally generated meshes can be
// registered through RegisterMesh to share the same cache and GPU upload
// path.
type Loader interface {
	// LoadMesh imports a glTF or GLB mesh file and caches the result. If the
	// mesh is already cached by path, the cached version is returned. When a
	// Renderer is attached the mesh buffers are uploaded to the GPU.
	//
	// Parameters:
	//   - path: the file path to the mesh file
	//
	// Returns:
	//   - model.Mesh: the loaded mesh
	//   - error: error if parsing or GPU upload fails
	LoadMesh(path string) (model.Mesh, error)

	// RegisterMesh caches an already-built mesh under a name and uploads its
	// buffers to the GPU when a Renderer is attached. Used for procedurally
	// generated geometry.
	//
	// Parameters:
	//   - name: the cache key
	//   - msh: the mesh to register
	//
	// Returns:
	//   - error: error if GPU upload fails
	RegisterMesh(name string, msh model.Mesh) error

	// LoadTexture reads an image file into an ImportedTexture and caches it
	// by path. The pixel data is decoded lazily by the material staging code.
	//
	// Parameters:
	//   - path: the file path to the image
	//
	// Returns:
	//   - *common.ImportedTexture: the texture
	//   - error: error if the file cannot be read
	LoadTexture(path string) (*common.ImportedTexture, error)

	// GetMesh retrieves a cached mesh by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Mesh: the cached mesh or nil
	GetMesh(name string) model.Mesh

	// Assets returns the registry of all loaded assets.
	//
	// Returns:
	//   - []Asset: the registered assets
	Assets() []Asset
}

var _ Loader = &loader{}

// NewLoader creates a new Loader with the specified options applied.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		meshCache:    make(map[string]model.Mesh),
		textureCache: make(map[string]*common.ImportedTexture),
		assets:       make(map[string]Asset),
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) LoadMesh(path string) (model.Mesh, error) {
	l.mu.RLock()
	if cached, ok := l.meshCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}

	msh, err := loadGLTFMesh(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if err := l.uploadMesh(msh); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.meshCache[path] = msh
	l.assets[path] = Asset{ID: uuid.New(), Name: path, Kind: AssetKindMesh}
	l.mu.Unlock()

	return msh, nil
}

func (l *loader) RegisterMesh(name string, msh model.Mesh) error {
	if err := l.uploadMesh(msh); err != nil {
		return err
	}

	l.mu.Lock()
	l.meshCache[name] = msh
	l.assets[name] = Asset{ID: uuid.New(), Name: name, Kind: AssetKindMesh}
	l.mu.Unlock()
	return nil
}

func (l *loader) LoadTexture(path string) (*common.ImportedTexture, error) {
	l.mu.RLock()
	if cached, ok := l.textureCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	tex, err := common.NewImportedTexture(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}

	l.mu.Lock()
	l.textureCache[path] = tex
	l.assets[path] = Asset{ID: uuid.New(), Name: path, Kind: AssetKindTexture}
	l.mu.Unlock()

	return tex, nil
}

func (l *loader) GetMesh(name string) model.Mesh {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.meshCache[name]
}

func (l *loader) Assets() []Asset {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]Asset, 0, len(l.assets))
	for _, a := range l.assets {
		result = append(result, a)
	}
	return result
}

// uploadMesh creates GPU vertex/index buffers for a mesh when a renderer is
// attached. Without a renderer the mesh stays CPU-side, which the tests rely
// on.
func (l *loader) uploadMesh(msh model.Mesh) error {
	if l.renderer == nil {
		return nil
	}

	provider := bind_group_provider.NewBindGroupProvider(msh.Name() + "_mesh")
	if err := l.renderer.InitMeshBuffers(provider, msh.VertexBytes(), msh.IndexBytes(), msh.IndexCount()); err != nil {
		return fmt.Errorf("failed to init mesh buffers for %q: %w", msh.Name(), err)
	}
	msh.SetMeshProvider(provider)
	return nil
}
