package renderer

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/gohouse/pkg/shader"
)

// GLDriver implements shader.Driver on the current OpenGL context.
type GLDriver struct{}

var _ shader.Driver = GLDriver{}

var glShaders = map[shader.Stage]uint32{
	shader.Vertex:   gl.VERTEX_SHADER,
	shader.Fragment: gl.FRAGMENT_SHADER,
}

func (GLDriver) CreateStage(stage shader.Stage) shader.Handle {
	return shader.Handle(gl.CreateShader(glShaders[stage]))
}

func (GLDriver) SetSource(h shader.Handle, text string) {
	csources, free := gl.Strs(text + "\x00")
	gl.ShaderSource(uint32(h), 1, csources, nil)
	free()
}

func (GLDriver) Compile(h shader.Handle) {
	gl.CompileShader(uint32(h))
}

func (GLDriver) CompileStatus(h shader.Handle) bool {
	var status int32
	gl.GetShaderiv(uint32(h), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (GLDriver) ShaderLogLength(h shader.Handle) int {
	var logLength int32
	gl.GetShaderiv(uint32(h), gl.INFO_LOG_LENGTH, &logLength)
	return int(logLength)
}

func (d GLDriver) ShaderLog(h shader.Handle) string {
	logLength := d.ShaderLogLength(h)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", logLength+1)
	gl.GetShaderInfoLog(uint32(h), int32(logLength), nil, gl.Str(log))
	return trimLog(log)
}

func (GLDriver) DeleteStage(h shader.Handle) {
	gl.DeleteShader(uint32(h))
}

func (GLDriver) CreateProgram() shader.Handle {
	return shader.Handle(gl.CreateProgram())
}

func (GLDriver) Attach(program, stage shader.Handle) {
	gl.AttachShader(uint32(program), uint32(stage))
}

func (GLDriver) Link(program shader.Handle) {
	gl.LinkProgram(uint32(program))
}

func (GLDriver) LinkStatus(program shader.Handle) bool {
	var status int32
	gl.GetProgramiv(uint32(program), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (GLDriver) ProgramLogLength(program shader.Handle) int {
	var logLength int32
	gl.GetProgramiv(uint32(program), gl.INFO_LOG_LENGTH, &logLength)
	return int(logLength)
}

func (d GLDriver) ProgramLog(program shader.Handle) string {
	logLength := d.ProgramLogLength(program)
	if logLength <= 0 {
		return ""
	}
	log := strings.Repeat("\x00", logLength+1)
	gl.GetProgramInfoLog(uint32(program), int32(logLength), nil, gl.Str(log))
	return trimLog(log)
}

func (GLDriver) Detach(program, stage shader.Handle) {
	gl.DetachShader(uint32(program), uint32(stage))
}

func (GLDriver) DeleteProgram(program shader.Handle) {
	gl.DeleteProgram(uint32(program))
}

// trimLog drops the terminator and padding the driver leaves in the buffer.
func trimLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	return strings.TrimRight(log, "\n")
}
