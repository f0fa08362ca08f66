package economy

import (
	"github.com/pixil98/go-survival/internal/game"
)

// Directions maps a direction name to its grid offset.
var Directions = map[string][2]int{
	"north": {0, -1},
	"south": {0, 1},
	"east":  {1, 0},
	"west":  {-1, 0},
	"ne":    {1, -1},
	"nw":    {-1, -1},
	"se":    {1, 1},
	"sw":    {-1, 1},
}

// Move steps the player one tile. Moving off the map is ignored.
func Move(w *game.World, p *game.Player, direction string) error {
	d, ok := Directions[direction]
	if !ok {
		return game.Userf("Unknown direction %q.", direction)
	}

	x, y := p.X+d[0], p.Y+d[1]
	if !w.InBounds(x, y) {
		return nil
	}
	if !w.Accessible(x, y) {
		return game.Userf("Path blocked")
	}

	p.X, p.Y = x, y
	w.Reveal(p, x, y)
	return nil
}
