package game

// Key is a frontend-independent input signal.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyBoost
	KeyReset
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyBoost:
		return "boost"
	case KeyReset:
		return "reset"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// KeyAction distinguishes the edges of a key. Only boost cares about Release.
type KeyAction int

const (
	Press KeyAction = iota
	Release
)

// Command is what an input event asks of the process beyond session state.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
)

// keyDirection maps steering keys to headings.
var keyDirection = map[Key]Direction{
	KeyUp:    Up,
	KeyDown:  Down,
	KeyLeft:  Left,
	KeyRight: Right,
}

// HandleKey applies one input event as a single atomic step. It may run at
// any time relative to ticks; only the direction held when the next tick
// starts takes effect.
func (s *GameSession) HandleKey(key Key, action KeyAction) Command {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key == KeyBoost {
		s.boost = action == Press
		return CommandNone
	}
	if action != Press {
		return CommandNone
	}

	if want, ok := keyDirection[key]; ok {
		s.direction = Turn(s.direction, want)
		return CommandNone
	}

	switch key {
	case KeyReset:
		s.resetRequested = true
	case KeyQuit:
		return CommandQuit
	}
	return CommandNone
}
