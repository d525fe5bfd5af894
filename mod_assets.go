package vertexcloud

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/gekko3d/vertexcloud/render/core"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type AssetId string

var (
	ErrAssetNotFound      = errors.New("asset not found")
	ErrUnsupportedTexture = errors.New("unsupported texture")
)

// AssetServer owns every mesh, material and texture referenced by components.
type AssetServer struct {
	meshes      map[AssetId]*core.Mesh
	pointMeshes map[AssetId]*core.PointMesh
	materials   map[AssetId]*core.Material
	textures    map[AssetId]*core.Texture
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(NewAssetServer())
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes:      make(map[AssetId]*core.Mesh),
		pointMeshes: make(map[AssetId]*core.PointMesh),
		materials:   make(map[AssetId]*core.Material),
		textures:    make(map[AssetId]*core.Texture),
	}
}

func (server *AssetServer) AddMesh(mesh *core.Mesh) (AssetId, error) {
	if err := mesh.Validate(); err != nil {
		return "", err
	}
	id := makeAssetId()
	server.meshes[id] = mesh
	return id, nil
}

// Mesh returns the source mesh for id, or nil.
func (server *AssetServer) Mesh(id AssetId) *core.Mesh {
	return server.meshes[id]
}

func (server *AssetServer) AddPointMesh(mesh *core.PointMesh) AssetId {
	id := makeAssetId()
	server.pointMeshes[id] = mesh
	return id
}

func (server *AssetServer) PointMesh(id AssetId) *core.PointMesh {
	return server.pointMeshes[id]
}

// CreateMaterial registers a material. texture may be empty for an untextured
// material.
func (server *AssetServer) CreateMaterial(name string, color [4]float32, texture AssetId) (AssetId, error) {
	var tex *core.Texture
	if texture != "" {
		var ok bool
		if tex, ok = server.textures[texture]; !ok {
			return "", fmt.Errorf("material %q: texture %s: %w", name, texture, ErrAssetNotFound)
		}
	}

	id := makeAssetId()
	server.materials[id] = core.NewMaterial(name, color, tex)
	return id, nil
}

func (server *AssetServer) Material(id AssetId) *core.Material {
	return server.materials[id]
}

func (server *AssetServer) Texture(id AssetId) *core.Texture {
	return server.textures[id]
}

func (server *AssetServer) CreateTexture(texels []uint8, width uint32, height uint32) (AssetId, error) {
	if uint64(len(texels)) != uint64(width)*uint64(height)*4 {
		return "", fmt.Errorf("%w: %d bytes for %dx%d RGBA", ErrUnsupportedTexture, len(texels), width, height)
	}
	id := makeAssetId()
	server.textures[id] = &core.Texture{
		Width:  width,
		Height: height,
		Pix:    texels,
	}
	return id, nil
}

// LoadTexture decodes a PNG, JPEG, BMP, TIFF or WebP file into RGBA8.
func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer file.Close()

	id, err := server.DecodeTexture(file)
	if err != nil {
		return "", fmt.Errorf("loading texture %s: %w", filename, err)
	}
	return id, nil
}

func (server *AssetServer) DecodeTexture(r io.Reader) (AssetId, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedTexture, err)
	}

	bounds := img.Bounds()
	rgbaImg, ok := img.(*image.RGBA)
	if !ok || rgbaImg.Stride != bounds.Dx()*4 || bounds.Min != (image.Point{}) {
		rgbaImg = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgbaImg, rgbaImg.Bounds(), img, bounds.Min, draw.Src)
	}

	id, err := server.CreateTexture(rgbaImg.Pix, uint32(bounds.Dx()), uint32(bounds.Dy()))
	if err != nil {
		return "", fmt.Errorf("%s image: %w", format, err)
	}
	return id, nil
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
