package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/gohouse/internal/config"
	"github.com/kjkrol/gohouse/internal/renderer"
	"github.com/kjkrol/gohouse/pkg/camera"
	"github.com/kjkrol/gohouse/pkg/gfx"
	"github.com/kjkrol/gohouse/pkg/light"
	"github.com/kjkrol/gohouse/pkg/model"
	"github.com/kjkrol/gohouse/pkg/scene"
	"github.com/kjkrol/gohouse/pkg/shader"
)

const cubeModel = "cube"

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	window, err := gfx.NewWindow(gfx.WindowConfig{
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		Title:         cfg.Window.Title,
		Samples:       cfg.Window.Samples,
		Resizable:     false,
		CaptureCursor: true,
	}, nil)
	if err != nil {
		return err
	}
	defer window.Close()

	rconf := renderer.RendererConfig{
		VertexShaderPath:   cfg.Shaders.Vertex,
		FragmentShaderPath: cfg.Shaders.Fragment,
		StrictShaders:      cfg.Shaders.Strict,
		ClearColor:         cfg.Render.Color(),
		DepthTest:          cfg.Render.DepthTest,
		CullFace:           cfg.Render.CullFace,
	}
	if err := renderer.InitGL(rconf); err != nil {
		return err
	}

	lights, err := buildLights(cfg.Lights)
	if err != nil {
		return err
	}

	cube, err := renderer.LoadModel(cfg.Assets.Model)
	if err != nil {
		return err
	}
	cube.AddTexture(cfg.Assets.Texture, "diffuse")
	cube.Material = model.Material{
		Ka: cfg.Assets.Ka,
		Kd: cfg.Assets.Kd,
		Ks: cfg.Assets.Ks,
		Ns: cfg.Assets.Ns,
	}

	cam := buildCamera(cfg.Camera, cfg.Window)
	ctl := camera.NewController(cam)
	ctl.Speed = cfg.Camera.Speed
	ctl.Sensitivity = cfg.Camera.Sensitivity

	sc := &renderer.Scene{
		Camera:  cam,
		Objects: scene.House(cubeModel),
		Models:  map[string]*renderer.Model{cubeModel: cube},
		Lights:  lights,
	}
	r, err := renderer.NewSceneRenderer(rconf, sc, logger)
	if err != nil {
		cube.DeleteBuffers()
		return err
	}
	window.SetRenderer(r)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reload := func() {
		if !window.Post(func() { r.Reload() }) {
			logger.Debug("shader reload already pending")
		}
	}
	if cfg.Shaders.Watch {
		watcher, err := shader.NewWatcher(logger, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			logger.Warn("shader hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
			go forwardChanges(ctx, watcher.Changes(), reload)
		}
	}

	in := newInput(ctl, float64(cfg.Window.Width)/2, float64(cfg.Window.Height)/2, reload)
	err = window.Run(ctx, nil, func(w *gfx.Window, dt float64) {
		in.update(w, dt)
	}, gfx.DrainAll())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func forwardChanges(ctx context.Context, changes <-chan string, reload func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			reload()
		}
	}
}

func buildCamera(c config.Camera, win config.Window) *camera.Camera {
	cam := camera.New(c.EyeVec(), c.TargetVec())
	cam.FOV = mgl32.DegToRad(c.FOV)
	cam.Aspect = float32(win.Width) / float32(win.Height)
	cam.Near = c.Near
	cam.Far = c.Far
	return cam
}

func buildLights(entries []config.Light) (*light.Set, error) {
	set := &light.Set{}
	for i, l := range entries {
		var err error
		switch l.Type {
		case "point":
			err = set.AddPointLight(mgl32.Vec3(l.Position), mgl32.Vec3(l.Colour), l.Constant, l.Linear, l.Quadratic)
		case "spot":
			err = set.AddSpotLight(mgl32.Vec3(l.Position), mgl32.Vec3(l.Direction), mgl32.Vec3(l.Colour), l.Constant, l.Linear, l.Quadratic, l.Cutoff)
		case "directional":
			err = set.AddDirectionalLight(mgl32.Vec3(l.Direction), mgl32.Vec3(l.Colour))
		default:
			err = fmt.Errorf("unknown light type %q", l.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("lights[%d]: %w", i, err)
		}
	}
	return set, nil
}
