package catalog

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-survival/internal/storage"
)

// Drop is an independent chance of receiving one unit of an item.
type Drop struct {
	Item   string  `json:"item"`
	Chance float64 `json:"chance"`
}

// Grant is a fixed quantity of an item handed out in a kit.
type Grant struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// Catalog holds every static definition the simulation reads. It is built
// once at startup and never mutated afterwards.
type Catalog struct {
	Items       map[string]*Item
	Tiles       map[string]*TileType
	Enemies     map[string]*EnemyType
	SearchZones map[string]*SearchZone
	Recipes     map[string]*Recipe

	StartingKit []Grant
	TreasureKit []Grant
	HuntLoot    []Drop
}

func (c *Catalog) Item(name string) *Item {
	return c.Items[name]
}

func (c *Catalog) Tile(key string) *TileType {
	return c.Tiles[key]
}

func (c *Catalog) Enemy(key string) *EnemyType {
	return c.Enemies[key]
}

func (c *Catalog) Recipe(name string) *Recipe {
	return c.Recipes[name]
}

// EnemyKeys returns enemy type keys in a stable order.
func (c *Catalog) EnemyKeys() []string {
	return SortedKeys(c.Enemies)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that every cross reference names a known definition.
func (c *Catalog) Validate() error {
	el := errors.NewErrorList()

	requireItem := func(owner, item string) {
		if c.Items[item] == nil {
			el.Add(fmt.Errorf("%s references unknown item %q", owner, item))
		}
	}

	for _, key := range []string{TileLagoon, TileBeach, TileForest, TilePlains, TileMineTerrain, TileTreasureChest} {
		if c.Tiles[key] == nil {
			el.Add(fmt.Errorf("required tile type %q is missing", key))
		}
	}

	for name, item := range c.Items {
		if item.TeachesRecipe != "" && c.Recipes[item.TeachesRecipe] == nil {
			el.Add(fmt.Errorf("item %q teaches unknown recipe %q", name, item.TeachesRecipe))
		}
	}
	for key, t := range c.Tiles {
		for item := range t.Cost {
			requireItem("tile "+key, item)
		}
		for _, item := range t.ToolRequired {
			requireItem("tile "+key, item)
		}
		if t.RequiresKey != "" {
			requireItem("tile "+key, t.RequiresKey)
		}
		if t.Resource != "" {
			requireItem("tile "+key, t.Resource)
		}
		if t.SearchZone != "" && c.SearchZones[t.SearchZone] == nil {
			el.Add(fmt.Errorf("tile %s references unknown search zone %q", key, t.SearchZone))
		}
	}
	for key, e := range c.Enemies {
		for item := range e.Loot {
			requireItem("enemy "+key, item)
		}
	}
	for key, z := range c.SearchZones {
		for _, items := range z.Loot {
			for _, item := range items {
				requireItem("search zone "+key, item)
			}
		}
	}
	for key, r := range c.Recipes {
		requireItem("recipe "+key, r.Output)
		for item := range r.Costs {
			requireItem("recipe "+key, item)
		}
	}
	for _, g := range c.StartingKit {
		requireItem("starting kit", g.Item)
	}
	for _, g := range c.TreasureKit {
		requireItem("treasure kit", g.Item)
	}
	for _, d := range c.HuntLoot {
		requireItem("hunt loot", d.Item)
	}

	return el.Err()
}

// Sources names optional asset directories whose definitions override or
// extend the builtin catalog. Empty paths are skipped.
type Sources struct {
	Items       string
	Tiles       string
	Enemies     string
	SearchZones string
	Recipes     string
}

// Load builds the default catalog, overlays any asset directories and
// validates the result.
func Load(src Sources) (*Catalog, error) {
	c := Default()

	if src.Items != "" {
		store, err := storage.NewFileStore[*Item](src.Items)
		if err != nil {
			return nil, fmt.Errorf("loading items: %w", err)
		}
		c.MergeItems(store)
	}
	if src.Tiles != "" {
		store, err := storage.NewFileStore[*TileType](src.Tiles)
		if err != nil {
			return nil, fmt.Errorf("loading tiles: %w", err)
		}
		c.MergeTiles(store)
	}
	if src.Enemies != "" {
		store, err := storage.NewFileStore[*EnemyType](src.Enemies)
		if err != nil {
			return nil, fmt.Errorf("loading enemies: %w", err)
		}
		c.MergeEnemies(store)
	}
	if src.SearchZones != "" {
		store, err := storage.NewFileStore[*SearchZone](src.SearchZones)
		if err != nil {
			return nil, fmt.Errorf("loading search zones: %w", err)
		}
		c.MergeSearchZones(store)
	}
	if src.Recipes != "" {
		store, err := storage.NewFileStore[*Recipe](src.Recipes)
		if err != nil {
			return nil, fmt.Errorf("loading recipes: %w", err)
		}
		c.MergeRecipes(store)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}

	return c, nil
}

// Items are keyed by display name, so the asset id only has to be unique on disk.
func (c *Catalog) MergeItems(st storage.Storer[*Item]) {
	for _, item := range st.GetAll() {
		c.Items[item.Name] = item
	}
}

func (c *Catalog) MergeTiles(st storage.Storer[*TileType]) {
	for id, t := range st.GetAll() {
		t.Key = id
		c.Tiles[id] = t
	}
}

func (c *Catalog) MergeEnemies(st storage.Storer[*EnemyType]) {
	for id, e := range st.GetAll() {
		e.Key = id
		c.Enemies[id] = e
	}
}

func (c *Catalog) MergeSearchZones(st storage.Storer[*SearchZone]) {
	for id, z := range st.GetAll() {
		z.Key = id
		c.SearchZones[id] = z
	}
}

// Recipes are keyed by name since scrolls teach them by name.
func (c *Catalog) MergeRecipes(st storage.Storer[*Recipe]) {
	for _, r := range st.GetAll() {
		c.Recipes[r.Name] = r
	}
}
