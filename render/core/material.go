package core

// Texture holds decoded RGBA8 texels.
type Texture struct {
	Width  uint32
	Height uint32
	Pix    []uint8
}

type Material struct {
	Name    string
	Color   [4]float32 // RGBA, multiplied with the sprite texel
	Texture *Texture

	// EnableInstancing reports whether draws with this material may be
	// submitted as instanced batches.
	EnableInstancing bool
}

func NewMaterial(name string, color [4]float32, texture *Texture) *Material {
	return &Material{
		Name:    name,
		Color:   color,
		Texture: texture,
	}
}

// Helper for default white
func DefaultMaterial() *Material {
	return &Material{
		Name:  "default",
		Color: [4]float32{1, 1, 1, 1},
	}
}
