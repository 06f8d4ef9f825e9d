package snake

import (
	"time"

	"github.com/charmbracelet/log"
)

// Event is a discrete notification emitted by State.Tick.
type Event interface {
	event()
}

// AteFoodEvent is emitted when the head lands on the food cell.
type AteFoodEvent struct {
	Tick   uint64
	Cell   Cell // Where the food was eaten
	Score  int  // Score after eating
	Speed  time.Duration
	Length int
}

func (AteFoodEvent) event() {}

// GameOverEvent is emitted once when a move collides.
type GameOverEvent struct {
	Tick   uint64
	Cause  Cause
	Score  int
	Length int
}

func (GameOverEvent) event() {}

// Cause describes what ended the game.
type Cause int

const (
	CauseBoundary Cause = iota // Head left the grid
	CauseSelf                  // Head hit the body
)

func (c Cause) String() string {
	switch c {
	case CauseBoundary:
		return "boundary"
	case CauseSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Notifier receives events. Implementations must not call back into State.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) {
	f(e)
}

// MultiNotifier fans an event out to every non-nil notifier in order.
type MultiNotifier []Notifier

// Notify forwards e to all notifiers.
func (m MultiNotifier) Notify(e Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(e)
		}
	}
}

// LogNotifier writes events to a structured logger.
type LogNotifier struct {
	Logger *log.Logger
	Fields []any // Extra key/value pairs, e.g. a session id
}

// Notify logs food at debug level and game over at info level.
func (l LogNotifier) Notify(e Event) {
	if l.Logger == nil {
		return
	}
	switch ev := e.(type) {
	case AteFoodEvent:
		l.Logger.Debug("ate food", append([]any{
			"tick", ev.Tick,
			"x", ev.Cell.X, "y", ev.Cell.Y,
			"score", ev.Score,
			"speed", ev.Speed,
			"length", ev.Length,
		}, l.Fields...)...)
	case GameOverEvent:
		l.Logger.Info("game over", append([]any{
			"tick", ev.Tick,
			"cause", ev.Cause,
			"score", ev.Score,
			"length", ev.Length,
		}, l.Fields...)...)
	}
}
