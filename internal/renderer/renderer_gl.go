package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/kjkrol/gohouse/pkg/camera"
	"github.com/kjkrol/gohouse/pkg/gfx"
	"github.com/kjkrol/gohouse/pkg/light"
	"github.com/kjkrol/gohouse/pkg/scene"
	"github.com/kjkrol/gohouse/pkg/shader"
)

// Scene is everything the renderer draws in one frame. Objects are drawn
// with the model registered under their name; unknown names are skipped.
type Scene struct {
	Camera  *camera.Camera
	Objects []scene.Object
	Models  map[string]*Model
	Lights  *light.Set
}

type SceneRenderer struct {
	conf     RendererConfig
	scene    *Scene
	loader   *shader.Loader
	program  *shader.Program
	uniforms *uniforms
	clear    [4]float32
	logger   *slog.Logger
}

// InitGL loads the OpenGL function pointers for the current context and
// sets the fixed pipeline state. It must run after the window is created
// and before any GPU resource is made.
func InitGL(conf RendererConfig) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	if conf.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
	if conf.CullFace {
		gl.Enable(gl.CULL_FACE)
	}
	return nil
}

// NewSceneRenderer compiles the configured shader program. Only unreadable
// shader sources are an error, or any compile/link failure with
// conf.StrictShaders set; otherwise a badly linked program is kept and its
// diagnostics are logged.
func NewSceneRenderer(conf RendererConfig, sc *Scene, logger *slog.Logger) (*SceneRenderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &SceneRenderer{
		conf:  conf,
		scene: sc,
		loader: &shader.Loader{
			Driver: GLDriver{},
			Reader: shader.FileReader{},
			Logger: logger,
			Strict: conf.StrictShaders,
		},
		clear:  colorToFloat(conf.ClearColor),
		logger: logger,
	}
	res := r.loader.Load(conf.VertexShaderPath, conf.FragmentShaderPath)
	if res.Program == nil {
		return nil, res.Err
	}
	r.SetProgram(res.Program)
	return r, nil
}

// SetProgram replaces the program used for drawing and releases the
// previous one.
func (r *SceneRenderer) SetProgram(p *shader.Program) {
	if r.program != nil && r.program != p {
		r.program.Release()
	}
	r.program = p
	r.uniforms = newUniforms(uint32(p.Handle()))
}

func (r *SceneRenderer) Program() *shader.Program {
	return r.program
}

// Reload recompiles the shader sources. The new program replaces the
// current one only if it linked cleanly.
func (r *SceneRenderer) Reload() *shader.Result {
	res := r.loader.Load(r.conf.VertexShaderPath, r.conf.FragmentShaderPath)
	if res.Status != shader.Linked {
		res.Program.Release()
		r.logger.Warn("shader reload failed, keeping previous program", "status", res.Status, "err", res.Err)
		return res
	}
	r.SetProgram(res.Program)
	r.logger.Info("shader program reloaded", "program", res.Handle())
	return res
}

func (r *SceneRenderer) Render(w *gfx.Window) {
	width, height := w.Size()
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// The input handlers keep steering the camera through its yaw/pitch
	// vectors; only the smoothed orientation carries over between frames.
	cam := r.scene.Camera
	view := *cam
	view.Aspect = float32(width) / float32(height)
	view.Target = view.Eye.Add(view.Front)
	view.QuaternionCamera()
	cam.Orientation = view.Orientation

	gl.UseProgram(uint32(r.program.Handle()))

	if r.scene.Lights != nil {
		r.scene.Lights.Upload(r.uniforms, view.View)
	}
	r.uniforms.UniformMatrix4("V", view.View)

	for _, o := range r.scene.Objects {
		mdl, ok := r.scene.Models[o.Name]
		if !ok {
			continue
		}
		mv := view.View.Mul4(o.Model())
		mvp := view.Projection.Mul4(mv)
		r.uniforms.UniformMatrix4("MVP", mvp)
		r.uniforms.UniformMatrix4("MV", mv)
		mdl.Draw(r.uniforms)
	}
}

func (r *SceneRenderer) Close() {
	for name, mdl := range r.scene.Models {
		mdl.DeleteBuffers()
		delete(r.scene.Models, name)
	}
	r.program.Release()
	r.program = nil
}
