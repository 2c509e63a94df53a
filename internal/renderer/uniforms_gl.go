package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// uniforms looks up locations by name on one program and caches them; the
// cache is dropped whenever the program changes.
type uniforms struct {
	program   uint32
	locations map[string]int32
}

func newUniforms(program uint32) *uniforms {
	return &uniforms{program: program, locations: make(map[string]int32)}
}

func (u *uniforms) location(name string) int32 {
	if loc, ok := u.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(u.program, gl.Str(name+"\x00"))
	u.locations[name] = loc
	return loc
}

func (u *uniforms) Uniform1i(name string, v int32) {
	gl.Uniform1i(u.location(name), v)
}

func (u *uniforms) Uniform1f(name string, v float32) {
	gl.Uniform1f(u.location(name), v)
}

func (u *uniforms) Uniform3f(name string, v mgl32.Vec3) {
	gl.Uniform3f(u.location(name), v[0], v[1], v[2])
}

func (u *uniforms) UniformMatrix4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(u.location(name), 1, false, &m[0])
}
