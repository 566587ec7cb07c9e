package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

var runeBindings = map[rune]game.Key{
	'h': game.KeyLeft,
	'j': game.KeyDown,
	'k': game.KeyUp,
	'l': game.KeyRight,
	' ': game.KeyBoost,
	's': game.KeyReset,
	'q': game.KeyQuit,
}

var keyBindings = map[tcell.Key]game.Key{
	tcell.KeyLeft:   game.KeyLeft,
	tcell.KeyDown:   game.KeyDown,
	tcell.KeyUp:     game.KeyUp,
	tcell.KeyRight:  game.KeyRight,
	tcell.KeyEscape: game.KeyQuit,
	tcell.KeyCtrlC:  game.KeyQuit,
}

// translate maps a terminal key event; unbound keys give game.KeyNone.
func translate(ev *tcell.EventKey) game.Key {
	if ev.Key() == tcell.KeyRune {
		return runeBindings[unicode.ToLower(ev.Rune())]
	}
	return keyBindings[ev.Key()]
}
