package renderer

import (
	"image/color"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/gohouse/pkg/model"
)

// Model is a mesh on the GPU with its material and textures.
type Model struct {
	mesh     *Mesh
	textures []*Texture
	Material model.Material
}

func NewModel(m *model.Mesh) *Model {
	return &Model{mesh: NewMesh(m), Material: model.DefaultMaterial()}
}

// LoadModel reads an OBJ file and uploads it.
func LoadModel(path string) (*Model, error) {
	m, err := model.LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	return NewModel(m), nil
}

// AddTexture loads an image file and binds it to the kind+"Map" sampler.
// A missing or undecodable file is logged and replaced by plain white so
// the scene still renders.
func (m *Model) AddTexture(path, kind string) {
	img, err := model.LoadImage(path)
	if err != nil {
		slog.Warn("using a blank texture", "kind", kind, "err", err)
		img = model.Solid(1, color.White)
	}
	m.textures = append(m.textures, NewTexture(img, kind))
}

func (m *Model) Draw(u *uniforms) {
	for i, t := range m.textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, t.id)
		u.Uniform1i(t.Kind+"Map", int32(i))
	}
	u.Uniform1f("ka", m.Material.Ka)
	u.Uniform1f("kd", m.Material.Kd)
	u.Uniform1f("ks", m.Material.Ks)
	u.Uniform1f("Ns", m.Material.Ns)
	m.mesh.Draw()
}

func (m *Model) DeleteBuffers() {
	m.mesh.DeleteBuffers()
	for _, t := range m.textures {
		t.Delete()
	}
	m.textures = nil
}
