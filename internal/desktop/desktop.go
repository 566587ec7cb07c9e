// Package desktop runs the game in a glfw window drawn with OpenGL.
package desktop

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	log "github.com/sirupsen/logrus"

	"gridsnake/internal/game"
	"gridsnake/internal/render"
	"gridsnake/internal/scene"
)

// maxFrameDelta caps animation steps after a stall.
const maxFrameDelta = 0.1

// Run opens the window, starts g and blocks until the player quits, the
// window closes or ctx is cancelled.
func Run(ctx context.Context, g *game.Game, cell int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cell)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.WithField("gl_version", gl.GoStr(gl.GetString(gl.VERSION))).Debug("opengl ready")

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := render.NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, a, ok := translate(key, action)
		if !ok {
			return
		}
		if !g.HandleKey(k, a) {
			w.SetShouldClose(true)
		}
	})

	g.Start(ctx)
	defer g.Stop()

	builder := scene.NewBuilder()
	last := glfw.GetTime()
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > maxFrameDelta {
			dt = maxFrameDelta
		}

		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		frame := builder.Build(g.Frame(), float32(dt))
		rend.BeginFrame(fbW, fbH)
		rend.DrawFrame(frame, scene.NewLayout(fbW, fbH))
		window.SwapBuffers()
	}
	log.Info("window closed")
	return nil
}
