package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-survival/internal/storage"
	"github.com/pixil98/go-testutil"
)

func TestDefault_Validates(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	for key, tile := range c.Tiles {
		if err := tile.Validate(); err != nil {
			t.Errorf("tile %s: %v", key, err)
		}
	}
	for name, item := range c.Items {
		if err := item.Validate(); err != nil {
			t.Errorf("item %s: %v", name, err)
		}
	}
	for name, r := range c.Recipes {
		if err := r.Validate(); err != nil {
			t.Errorf("recipe %s: %v", name, err)
		}
		if c.Item(ScrollName(name)) == nil {
			t.Errorf("recipe %s has no scroll", name)
		}
	}
}

func TestItem_Unique(t *testing.T) {
	tests := map[string]struct {
		item      Item
		expUnique bool
		expEat    bool
	}{
		"resource":   {item: Item{Kind: KindResource}, expUnique: false},
		"consumable": {item: Item{Kind: KindConsumable}, expUnique: false, expEat: true},
		"tool":       {item: Item{Kind: KindTool}, expUnique: true},
		"weapon":     {item: Item{Kind: KindWeapon}, expUnique: true},
		"slotted":    {item: Item{Kind: KindArmor, Slot: SlotHead}, expUnique: true},
		"scroll":     {item: Item{Kind: KindResource, TeachesRecipe: "Club"}, expEat: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "unique", tt.item.Unique(), tt.expUnique)
			testutil.AssertEqual(t, "consumable", tt.item.Consumable(), tt.expEat)
		})
	}
}

func TestCatalog_Validate_Errors(t *testing.T) {
	tests := map[string]struct {
		mutate func(c *Catalog)
		expErr string
	}{
		"missing lagoon": {
			mutate: func(c *Catalog) { delete(c.Tiles, TileLagoon) },
			expErr: `required tile type "LAGOON" is missing`,
		},
		"unknown loot": {
			mutate: func(c *Catalog) { c.Enemies["RAT"].Loot["Cheese"] = 1 },
			expErr: `enemy RAT references unknown item "Cheese"`,
		},
		"unknown recipe": {
			mutate: func(c *Catalog) { c.Items["Scroll: Club"].TeachesRecipe = "Nothing" },
			expErr: `teaches unknown recipe "Nothing"`,
		},
		"unknown search zone": {
			mutate: func(c *Catalog) { c.Tiles[TileBeach].SearchZone = "MOON" },
			expErr: `unknown search zone "MOON"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			testutil.AssertErrorContains(t, c.Validate(), tt.expErr)
		})
	}
}

func writeJSON(t *testing.T, dir, file string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoad_Overlay(t *testing.T) {
	items := t.TempDir()
	enemies := t.TempDir()

	writeJSON(t, items, "rock.json", storage.Asset[*Item]{
		Version: 1, Identifier: "shiny-rock",
		Spec: &Item{Name: "Shiny rock", Kind: KindResource},
	})
	writeJSON(t, enemies, "crab.json", storage.Asset[*EnemyType]{
		Version: 1, Identifier: "CRAB",
		Spec: &EnemyType{Name: "Angry crab", Health: 3, Damage: 1, Loot: map[string]int{"Shiny rock": 1}},
	})

	c, err := Load(Sources{Items: items, Enemies: enemies})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "item kind", c.Item("Shiny rock").Kind, KindResource)
	testutil.AssertEqual(t, "enemy key", c.Enemy("CRAB").Key, "CRAB")
	testutil.AssertEqual(t, "wolf kept", c.Enemy("WOLF") != nil, true)
	testutil.AssertEqual(t, "enemy keys", c.EnemyKeys(), []string{"CRAB", "RAT", "SNAKE", "WOLF"})
}

func TestLoad_InvalidReference(t *testing.T) {
	enemies := t.TempDir()
	writeJSON(t, enemies, "crab.json", storage.Asset[*EnemyType]{
		Version: 1, Identifier: "CRAB",
		Spec: &EnemyType{Name: "Angry crab", Health: 3, Damage: 1, Loot: map[string]int{"Pearl": 1}},
	})

	_, err := Load(Sources{Enemies: enemies})
	testutil.AssertErrorContains(t, err, "validating catalog")
}
