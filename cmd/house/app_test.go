package main

import (
	"context"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/gohouse/internal/config"
	"github.com/kjkrol/gohouse/pkg/light"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLights(t *testing.T) {
	set, err := buildLights(config.Default().Lights)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	l := set.Lights()[0]
	assert.Equal(t, light.Directional, l.Type)
	assert.InDelta(t, 1, l.Direction.Len(), 1e-5)
}

func TestBuildLights_TooMany(t *testing.T) {
	entries := make([]config.Light, light.MaxLights+1)
	for i := range entries {
		entries[i] = config.Light{Type: "point", Constant: 1}
	}
	_, err := buildLights(entries)
	assert.ErrorIs(t, err, light.ErrTooManyLights)
}

func TestBuildCamera(t *testing.T) {
	cfg := config.Default()
	cam := buildCamera(cfg.Camera, cfg.Window)
	assert.Equal(t, mgl32.Vec3{0, 0, 4}, cam.Eye)
	assert.InDelta(t, mgl32.DegToRad(45), cam.FOV, 1e-6)
	assert.InDelta(t, 1024.0/768.0, cam.Aspect, 1e-6)
}

func TestForwardChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan string)
	reloads := make(chan struct{}, 4)
	done := make(chan struct{})
	go func() {
		forwardChanges(ctx, changes, func() { reloads <- struct{}{} })
		close(done)
	}()

	changes <- "vertexShader.glsl"
	select {
	case <-reloads:
	case <-time.After(time.Second):
		t.Fatal("no reload after a change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forwardChanges did not stop")
	}
}
