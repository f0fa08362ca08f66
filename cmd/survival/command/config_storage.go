package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-survival/internal/accounts"
	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/journal"
)

// CatalogConfig points at asset directories that override builtin
// definitions. Every path is optional.
type CatalogConfig struct {
	Items       AssetConfig `json:"items"`
	Tiles       AssetConfig `json:"tiles"`
	Enemies     AssetConfig `json:"enemies"`
	SearchZones AssetConfig `json:"search_zones"`
	Recipes     AssetConfig `json:"recipes"`
}

func (c *CatalogConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Items.Validate("catalog.items"))
	el.Add(c.Tiles.Validate("catalog.tiles"))
	el.Add(c.Enemies.Validate("catalog.enemies"))
	el.Add(c.SearchZones.Validate("catalog.search_zones"))
	el.Add(c.Recipes.Validate("catalog.recipes"))
	return el.Err()
}

func (c *CatalogConfig) BuildCatalog() (*catalog.Catalog, error) {
	return catalog.Load(catalog.Sources{
		Items:       c.Items.Path,
		Tiles:       c.Tiles.Path,
		Enemies:     c.Enemies.Path,
		SearchZones: c.SearchZones.Path,
		Recipes:     c.Recipes.Path,
	})
}

type AssetConfig struct {
	Path string `json:"path"`
}

func (c *AssetConfig) Validate(name string) error {
	if c.Path == "" {
		return nil
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

type AccountsConfig struct {
	Path string `json:"path"`
}

func (c *AccountsConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(filepath.Dir(c.Path)); err != nil {
		return fmt.Errorf("accounts: invalid path %q: %w", c.Path, err)
	}
	return nil
}

// BuildStore opens the account database, or returns nil when accounts are
// not configured.
func (c *AccountsConfig) BuildStore() (*accounts.Store, error) {
	if c.Path == "" {
		return nil, nil
	}
	return accounts.Open(c.Path)
}

// JournalFile is the name of the action journal inside the journal
// directory.
const JournalFile = "actions.jsonl.zst"

type JournalConfig struct {
	Path string `json:"path"`
}

// BuildJournal opens the action journal, or returns nil when journaling is
// off.
func (c *JournalConfig) BuildJournal() (*journal.Journal, error) {
	if c.Path == "" {
		return nil, nil
	}
	return journal.Open(filepath.Join(c.Path, JournalFile))
}
