package main

import (
	"github.com/kjkrol/gohouse/pkg/camera"
	"github.com/kjkrol/gohouse/pkg/gfx"
)

type inputDevice interface {
	KeyDown(k gfx.Key) bool
	CursorPos() (float64, float64)
	SetCursorPos(x, y float64)
	Stop()
}

var moveKeys = []struct {
	key gfx.Key
	dir camera.Direction
}{
	{gfx.KeyW, camera.Forward},
	{gfx.KeyS, camera.Backward},
	{gfx.KeyA, camera.Left},
	{gfx.KeyD, camera.Right},
	{gfx.KeySpace, camera.Up},
	{gfx.KeyLeftShift, camera.Down},
}

// input turns polled key and cursor state into camera motion. The cursor
// is put back to the centre every frame, so its offset is the mouse delta.
type input struct {
	ctl      *camera.Controller
	cx, cy   float64
	reload   func()
	reloadOn bool
}

func newInput(ctl *camera.Controller, cx, cy float64, reload func()) *input {
	return &input{ctl: ctl, cx: cx, cy: cy, reload: reload}
}

func (in *input) update(dev inputDevice, dt float64) {
	in.keyboard(dev, float32(dt))
	in.mouse(dev)
}

func (in *input) keyboard(dev inputDevice, dt float32) {
	if dev.KeyDown(gfx.KeyEscape) {
		dev.Stop()
	}
	for _, mk := range moveKeys {
		if dev.KeyDown(mk.key) {
			in.ctl.Move(mk.dir, dt)
		}
	}

	// R reloads once per press.
	down := dev.KeyDown(gfx.KeyR)
	if down && !in.reloadOn && in.reload != nil {
		in.reload()
	}
	in.reloadOn = down
}

func (in *input) mouse(dev inputDevice) {
	x, y := dev.CursorPos()
	dev.SetCursorPos(in.cx, in.cy)
	in.ctl.Look(x-in.cx, in.cy-y)
}
