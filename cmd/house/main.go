// Command house renders a small house built from textured cubes, lit by
// configurable light sources, and lets the user fly around it.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
