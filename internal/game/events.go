package game

type EventType int

const (
	EventExplosion EventType = iota
	EventShot
	EventScoreChanged
	EventHealthChanged
	EventPowerUp
	EventGameOver
	EventRestart
)

func (t EventType) String() string {
	switch t {
	case EventExplosion:
		return "explosion"
	case EventShot:
		return "shot"
	case EventScoreChanged:
		return "score"
	case EventHealthChanged:
		return "health"
	case EventPowerUp:
		return "powerup"
	case EventGameOver:
		return "gameover"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y float64
	Data int         // score, health or final score depending on Type
	Kind PowerUpKind // EventPowerUp only
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the caller's goroutine.
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

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventExplosion; t <= EventRestart; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
