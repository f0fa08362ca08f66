package mapgen

import (
	"context"
	"testing"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
	"github.com/pixil98/go-survival/internal/rules"
	"github.com/pixil98/go-testutil"
)

// fixedRand always returns the same values.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

func countType(grid [][]*game.Tile, key string) [][2]int {
	var out [][2]int
	for _, row := range grid {
		for _, t := range row {
			if t.Type == key {
				out = append(out, [2]int{t.X, t.Y})
			}
		}
	}
	return out
}

func TestGenerate_Seeded(t *testing.T) {
	cat := catalog.Default()
	r := rules.Default().Map

	grid := NewGenerator(cat, r, WithSeed(42)).Generate(context.Background())

	testutil.AssertEqual(t, "height", len(grid), r.Height)
	for y, row := range grid {
		testutil.AssertEqual(t, "width", len(row), r.Width)
		for x, tile := range row {
			if tile == nil {
				t.Fatalf("tile %d,%d missing", x, y)
			}
			border := x == 0 || y == 0 || x == r.Width-1 || y == r.Height-1
			if border && tile.Type != catalog.TileLagoon {
				t.Errorf("border tile %d,%d is %s", x, y, tile.Type)
			}
			for c, n := range tile.Counters {
				testutil.AssertEqual(t, "counter "+string(c), n, cat.Tile(tile.Type).Counters[c])
			}
		}
	}

	testutil.AssertEqual(t, "treasures", len(countType(grid, catalog.TileTreasureChest)), 1)

	mines := countType(grid, catalog.TileMineTerrain)
	testutil.AssertEqual(t, "mines", len(mines), r.MineDeposits)
	testutil.AssertEqual(t, "mines apart", chebyshev(mines[0], mines[1]) > 1, true)
}

func TestGenerate_SameSeedSameMap(t *testing.T) {
	cat := catalog.Default()
	r := rules.Default().Map

	a := NewGenerator(cat, r, WithSeed(7)).Generate(context.Background())
	b := NewGenerator(cat, r, WithSeed(7)).Generate(context.Background())

	for y := range a {
		for x := range a[y] {
			testutil.AssertEqual(t, "type", a[y][x].Type, b[y][x].Type)
		}
	}
}

func TestGenerate_PlacementFallback(t *testing.T) {
	cat := catalog.Default()
	r := rules.Default().Map

	// Every random cell lands on the lagoon corner, forcing the scan.
	grid := NewGenerator(cat, r, WithRand(fixedRand{f: 0.99, n: 0})).Generate(context.Background())

	testutil.AssertEqual(t, "treasure", countType(grid, catalog.TileTreasureChest), [][2]int{{1, 1}})

	for _, row := range grid {
		for _, tile := range row {
			if tile.HiddenItem != "" {
				t.Errorf("hidden key placed at %d,%d", tile.X, tile.Y)
			}
		}
	}

	mines := countType(grid, catalog.TileMineTerrain)
	testutil.AssertEqual(t, "mines", len(mines), 2)
	testutil.AssertEqual(t, "mines apart", chebyshev(mines[0], mines[1]) > 1, true)
}

func TestFirstFreeCell(t *testing.T) {
	tests := map[string]struct {
		ok       func(x, y int) bool
		expX     int
		expY     int
		expFound bool
	}{
		"first cell": {
			ok:   func(x, y int) bool { return true },
			expX: 0, expY: 0, expFound: true,
		},
		"row major": {
			ok:   func(x, y int) bool { return x == 1 && y >= 2 },
			expX: 1, expY: 2, expFound: true,
		},
		"none": {
			ok:       func(x, y int) bool { return false },
			expFound: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			x, y, found := FirstFreeCell(4, 4, tt.ok)
			testutil.AssertEqual(t, "found", found, tt.expFound)
			testutil.AssertEqual(t, "x", x, tt.expX)
			testutil.AssertEqual(t, "y", y, tt.expY)
		})
	}
}
