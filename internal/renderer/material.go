package renderer

import "strconv"

// textureBits is the share of a sort id holding the dense texture id
const textureBits = strconv.IntSize / 2

// DefaultMaterial is used for geometries without a material
var DefaultMaterial = &Material{
	Name:         "default",
	Shader:       "default",
	DiffuseColor: [3]float32{1.0, 1.0, 1.0},
	Alpha:        1.0,
}

type Material struct {
	// HOT DATA - Read by the render queue and the render manager every frame
	Shader       string     // Shader program name, first sort criterion
	TextureID    uint32     // Texture handle, second sort criterion
	Alpha        float32    // Transparency (0.0 = transparent, 1.0 = opaque)
	DiffuseColor [3]float32 // Base color

	// COLD DATA
	Name string // Material name for debugging
}

func NewMaterial(name, shader string) *Material {
	return &Material{
		Name:         name,
		Shader:       shader,
		DiffuseColor: [3]float32{1.0, 1.0, 1.0},
		Alpha:        1.0,
	}
}

// SortID orders materials so that geometries sharing a shader, and then a
// texture, are drawn next to each other. Both parts are dense cache ids, so
// raw texture handles of any size never collide.
func (m *Material) SortID() int {
	return ShaderIDs.ShaderID(m.Shader)<<textureBits | ShaderIDs.TextureID(m.TextureID)
}

func (m *Material) IsTransparent() bool {
	return m.Alpha < 1.0
}
