// Package model loads Wavefront OBJ meshes, their material parameters and
// texture images into CPU-side structures ready for upload.
package model

import "github.com/go-gl/mathgl/mgl32"

// FloatsPerVertex is the stride of Mesh.Interleaved: position (3), UV (2),
// normal (3).
const FloatsPerVertex = 8

type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
	Normal   mgl32.Vec3
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.UV[0], v.UV[1],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}
	return out
}

// Material holds the Phong reflection coefficients the fragment shader
// reads as ka, kd, ks and Ns.
type Material struct {
	Ka float32
	Kd float32
	Ks float32
	Ns float32
}

func DefaultMaterial() Material {
	return Material{Ka: 0.2, Kd: 0.7, Ks: 1.0, Ns: 20}
}
