package snake

import (
	"slices"

	"github.com/vovakirdan/gridsnake/internal/config"
)

// placeFood picks the next food cell.
//
// Classic draws uniformly over the whole grid and may land under the snake.
// Strict draws up to RespawnAttempts times looking for a free cell, then
// picks uniformly among the free cells. When no cell is free the food stays put.
func (s *State) placeFood(policy config.FoodPolicy) Cell {
	n := s.rules.GridSize
	if policy != config.FoodStrict {
		return Cell{X: s.rng.Intn(n), Y: s.rng.Intn(n)}
	}

	for range s.rules.RespawnAttempts {
		c := Cell{X: s.rng.Intn(n), Y: s.rng.Intn(n)}
		if !slices.Contains(s.snake, c) {
			return c
		}
	}

	occupied := make(map[Cell]struct{}, len(s.snake))
	for _, seg := range s.snake {
		occupied[seg] = struct{}{}
	}
	free := make([]Cell, 0, n*n-len(occupied))
	for y := range n {
		for x := range n {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return s.food
	}
	return free[s.rng.Intn(len(free))]
}
