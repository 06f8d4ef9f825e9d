package snake

import "time"

// Snapshot is a read-only copy of a State, safe to keep across ticks.
type Snapshot struct {
	Tick      uint64
	GridSize  int
	Snake     []Cell // Head first
	Food      Cell
	Direction Direction
	Score     int
	Speed     time.Duration
	Paused    bool
	Over      bool
	Phase     Phase
}

// Head returns the head cell.
func (s Snapshot) Head() Cell {
	return s.Snake[0]
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	body := make([]Cell, len(s.snake))
	copy(body, s.snake)
	return Snapshot{
		Tick:      s.tick,
		GridSize:  s.rules.GridSize,
		Snake:     body,
		Food:      s.food,
		Direction: s.direction,
		Score:     s.score,
		Speed:     s.speed,
		Paused:    s.paused,
		Over:      s.over,
		Phase:     s.Phase(),
	}
}
