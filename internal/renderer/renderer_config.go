package renderer

import "image/color"

// RendererConfig describes what the scene renderer draws with.
// VertexShaderPath and FragmentShaderPath name the GLSL sources compiled at
// start-up. The program is fed the MVP, MV and V mat4 uniforms; ones it does
// not declare are ignored.
type RendererConfig struct {
	VertexShaderPath   string
	FragmentShaderPath string
	StrictShaders      bool
	ClearColor         color.Color
	DepthTest          bool
	CullFace           bool
}
