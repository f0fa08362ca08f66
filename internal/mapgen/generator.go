package mapgen

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ojrac/opensimplex-go"
	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/rules"
)

// noiseScale stretches grid coordinates so neighbouring cells sample
// correlated noise.
const noiseScale = 0.15

type Generator struct {
	cat   *catalog.Catalog
	rules rules.Map
	seed  int64
	rng   game.Rand
	noise opensimplex.Noise
}

type GeneratorOpt func(*Generator)

// WithSeed makes generation reproducible.
func WithSeed(seed int64) GeneratorOpt {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithRand replaces the random source used for layout and placement.
func WithRand(r game.Rand) GeneratorOpt {
	return func(g *Generator) {
		g.rng = r
	}
}

func NewGenerator(cat *catalog.Catalog, r rules.Map, opts ...GeneratorOpt) *Generator {
	g := &Generator{
		cat:   cat,
		rules: r,
		seed:  time.Now().UnixNano(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(uint64(g.seed), uint64(g.seed)>>1))
	}
	g.noise = opensimplex.NewNormalized(g.seed)

	return g
}

// layout is the tile type key of each cell, indexed [y][x].
type layout [][]string

func (l layout) at(x, y int) string {
	if y < 0 || y >= len(l) || x < 0 || x >= len(l[y]) {
		return ""
	}
	return l[y][x]
}

// Generate builds a complete map. Every cell is materialized even when a
// special feature could not be placed.
func (g *Generator) Generate(ctx context.Context) [][]*game.Tile {
	water := g.waterLayout()
	types := g.classify(water)

	special := make(map[[2]int]bool)
	g.placeTreasure(ctx, types, special)
	hidden := g.placeHiddenKey(ctx, types, special)
	g.placeMines(ctx, types, special)

	grid := make([][]*game.Tile, g.rules.Height)
	for y := range grid {
		grid[y] = make([]*game.Tile, g.rules.Width)
		for x := range grid[y] {
			grid[y][x] = game.NewTile(x, y, g.cat.Tile(types[y][x]))
		}
	}
	if hidden != nil {
		grid[hidden[1]][hidden[0]].HiddenItem = catalog.ItemTreasureKey
	}

	return grid
}

func (g *Generator) waterLayout() [][]bool {
	w, h := g.rules.Width, g.rules.Height
	water := make([][]bool, h)
	for y := range water {
		water[y] = make([]bool, w)
		for x := range water[y] {
			switch {
			case x == 0 || y == 0 || x == w-1 || y == h-1:
				water[y][x] = true
			case x == 1 || y == 1 || x == w-2 || y == h-2:
				water[y][x] = game.Roll(g.rng, g.rules.RingWaterChance)
			}
		}
	}
	return water
}

func (g *Generator) classify(water [][]bool) layout {
	types := make(layout, len(water))
	for y := range water {
		types[y] = make([]string, len(water[y]))
		for x := range water[y] {
			switch {
			case water[y][x]:
				types[y][x] = catalog.TileLagoon
			case coastal(water, x, y):
				types[y][x] = catalog.TileBeach
			case game.Roll(g.rng, g.forestChance(x, y)):
				types[y][x] = catalog.TileForest
			default:
				types[y][x] = catalog.TilePlains
			}
		}
	}
	return types
}

// forestChance nudges the base chance by up to 0.2 either way so forests
// clump together.
func (g *Generator) forestChance(x, y int) float64 {
	n := g.noise.Eval2(float64(x)*noiseScale, float64(y)*noiseScale)
	return max(0, min(1, g.rules.ForestChance+(n-0.5)*0.4))
}

func coastal(water [][]bool, x, y int) bool {
	for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if ny >= 0 && ny < len(water) && nx >= 0 && nx < len(water[ny]) && water[ny][nx] {
			return true
		}
	}
	return false
}

func (g *Generator) free(types layout, special map[[2]int]bool) func(x, y int) bool {
	return func(x, y int) bool {
		if special[[2]int{x, y}] {
			return false
		}
		t := g.cat.Tile(types.at(x, y))
		return t != nil && t.Accessible && !t.IsBuilding
	}
}

// randomCell tries up to PlacementTries random cells accepted by ok.
func (g *Generator) randomCell(ok func(x, y int) bool) (int, int, bool) {
	for range g.rules.PlacementTries {
		x, y := g.rng.IntN(g.rules.Width), g.rng.IntN(g.rules.Height)
		if ok(x, y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

func (g *Generator) placeTreasure(ctx context.Context, types layout, special map[[2]int]bool) {
	ok := g.free(types, special)

	x, y, found := g.randomCell(ok)
	if !found {
		x, y, found = FirstFreeCell(g.rules.Width, g.rules.Height, ok)
		if !found {
			slog.WarnContext(ctx, "no free cell for treasure, skipping")
			return
		}
		slog.WarnContext(ctx, "treasure placement exhausted retries, using first free cell", "x", x, "y", y)
	}

	types[y][x] = catalog.TileTreasureChest
	special[[2]int{x, y}] = true
}

func (g *Generator) placeHiddenKey(ctx context.Context, types layout, special map[[2]int]bool) *[2]int {
	x, y, found := g.randomCell(g.free(types, special))
	if !found {
		slog.WarnContext(ctx, "hidden key placement exhausted retries, skipping")
		return nil
	}
	special[[2]int{x, y}] = true
	return &[2]int{x, y}
}

// placeMines turns interior cells into mine terrain, never two adjacent
// to each other.
func (g *Generator) placeMines(ctx context.Context, types layout, special map[[2]int]bool) {
	var candidates [][2]int
	for y := range types {
		for x := range types[y] {
			t := types[y][x]
			if (t == catalog.TileForest || t == catalog.TilePlains) && !special[[2]int{x, y}] {
				candidates = append(candidates, [2]int{x, y})
			}
		}
	}
	shuffle(g.rng, candidates)

	var placed [][2]int
	for _, c := range candidates {
		if len(placed) == g.rules.MineDeposits {
			break
		}
		if nearAny(c, placed) {
			continue
		}
		types[c[1]][c[0]] = catalog.TileMineTerrain
		special[c] = true
		placed = append(placed, c)
	}

	if len(placed) < g.rules.MineDeposits {
		slog.WarnContext(ctx, "placed fewer mine deposits than requested", "placed", len(placed), "requested", g.rules.MineDeposits)
	}
}

func nearAny(c [2]int, others [][2]int) bool {
	for _, o := range others {
		if chebyshev(c, o) <= 1 {
			return true
		}
	}
	return false
}

func chebyshev(a, b [2]int) int {
	return max(abs(a[0]-b[0]), abs(a[1]-b[1]))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func shuffle(r game.Rand, s [][2]int) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// FirstFreeCell scans the grid row by row and returns the first cell
// accepted by ok.
func FirstFreeCell(width, height int, ok func(x, y int) bool) (int, int, bool) {
	for y := range height {
		for x := range width {
			if ok(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
