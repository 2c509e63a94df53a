// Package config holds the demo settings, read from a TOML file.
package config

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Window  Window  `toml:"window"`
	Shaders Shaders `toml:"shaders"`
	Assets  Assets  `toml:"assets"`
	Camera  Camera  `toml:"camera"`
	Render  Render  `toml:"render"`
	Lights  []Light `toml:"lights"`
}

type Window struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	Samples int    `toml:"samples"`
}

type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	// Strict discards programs that failed to compile or link instead of
	// drawing with them.
	Strict bool `toml:"strict"`
	// Watch recompiles the program when a source file changes.
	Watch bool `toml:"watch"`
}

type Assets struct {
	Model   string  `toml:"model"`
	Texture string  `toml:"texture"`
	Ka      float32 `toml:"ka"`
	Kd      float32 `toml:"kd"`
	Ks      float32 `toml:"ks"`
	Ns      float32 `toml:"ns"`
}

type Camera struct {
	Eye         [3]float32 `toml:"eye"`
	Target      [3]float32 `toml:"target"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	FOV         float32    `toml:"fov"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
}

type Render struct {
	ClearColor [4]float32 `toml:"clear_color"`
	DepthTest  bool       `toml:"depth_test"`
	CullFace   bool       `toml:"cull_face"`
}

// Light is one [[lights]] entry; Type is "directional", "point" or "spot".
type Light struct {
	Type      string     `toml:"type"`
	Position  [3]float32 `toml:"position"`
	Direction [3]float32 `toml:"direction"`
	Colour    [3]float32 `toml:"colour"`
	Constant  float32    `toml:"constant"`
	Linear    float32    `toml:"linear"`
	Quadratic float32    `toml:"quadratic"`
	Cutoff    float32    `toml:"cutoff"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:   1024,
			Height:  768,
			Title:   "Computer Graphics Coursework",
			Samples: 4,
		},
		Shaders: Shaders{
			Vertex:   "shaders/vertexShader.glsl",
			Fragment: "shaders/fragmentShader.glsl",
		},
		Assets: Assets{
			Model:   "assets/cube.obj",
			Texture: "assets/crate.png",
			Ka:      1.0,
			Kd:      0.0,
			Ks:      0.0,
			Ns:      20.0,
		},
		Camera: Camera{
			Eye:         [3]float32{0, 0, 4},
			Target:      [3]float32{0, 0, 0},
			Speed:       5,
			Sensitivity: 0.005,
			FOV:         45,
			Near:        0.2,
			Far:         100,
		},
		Render: Render{
			ClearColor: [4]float32{0.2, 0.2, 0.2, 0},
			DepthTest:  true,
			CullFace:   true,
		},
		Lights: []Light{
			{Type: "directional", Direction: [3]float32{1, -1, 0}, Colour: [3]float32{1, 1, 0}},
		},
	}
}

// Load returns Default overridden by the TOML file at path. An empty path
// returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := Decode(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode applies TOML data on top of cfg. Unknown keys are rejected so that
// typos do not silently fall back to defaults. A [[lights]] table replaces
// the default lights rather than appending to them.
func Decode(data []byte, cfg *Config) error {
	defaults := cfg.Lights
	cfg.Lights = nil
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		cfg.Lights = defaults
		return err
	}
	if cfg.Lights == nil {
		cfg.Lights = defaults
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("both shader paths are required")
	}
	for i, l := range c.Lights {
		switch l.Type {
		case "directional", "point", "spot":
		default:
			return fmt.Errorf("lights[%d]: unknown type %q", i, l.Type)
		}
	}
	return nil
}

func (c Camera) EyeVec() mgl32.Vec3 { return mgl32.Vec3(c.Eye) }
func (c Camera) TargetVec() mgl32.Vec3 { return mgl32.Vec3(c.Target) }

// Color returns the clear colour. The components are stored as given, not
// premultiplied, since they go straight to glClearColor.
func (r Render) Color() color.Color {
	clamp := func(v float32) uint8 {
		switch {
		case v <= 0:
			return 0
		case v >= 1:
			return 255
		default:
			return uint8(v*255 + 0.5)
		}
	}
	return color.RGBA{
		R: clamp(r.ClearColor[0]),
		G: clamp(r.ClearColor[1]),
		B: clamp(r.ClearColor[2]),
		A: clamp(r.ClearColor[3]),
	}
}
