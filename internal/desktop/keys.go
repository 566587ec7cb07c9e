package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/game"
)

var keyBindings = map[glfw.Key]game.Key{
	glfw.KeyH:      game.KeyLeft,
	glfw.KeyJ:      game.KeyDown,
	glfw.KeyK:      game.KeyUp,
	glfw.KeyL:      game.KeyRight,
	glfw.KeyLeft:   game.KeyLeft,
	glfw.KeyDown:   game.KeyDown,
	glfw.KeyUp:     game.KeyUp,
	glfw.KeyRight:  game.KeyRight,
	glfw.KeySpace:  game.KeyBoost,
	glfw.KeyS:      game.KeyReset,
	glfw.KeyQ:      game.KeyQuit,
	glfw.KeyEscape: game.KeyQuit,
}

// translate maps a glfw key event. Repeats and unbound keys report ok=false.
func translate(key glfw.Key, action glfw.Action) (k game.Key, a game.KeyAction, ok bool) {
	k, ok = keyBindings[key]
	if !ok {
		return game.KeyNone, game.Press, false
	}
	switch action {
	case glfw.Press:
		return k, game.Press, true
	case glfw.Release:
		return k, game.Release, true
	default:
		return game.KeyNone, game.Press, false
	}
}
