package game

type EventType int

const (
	EventAte EventType = iota
	EventHighScore
	EventGameOver
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventAte:
		return "ate"
	case EventHighScore:
		return "high_score"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

type Event struct {
	Type  EventType
	At    Point // head position when the event fired
	Score int
}

type EventHandler func(Event)

// EventBus fans events out to subscribers. Subscribe before the game starts;
// Emit runs on the clock goroutine and on the render thread.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
