package combat

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-survival/internal/catalog"
	"github.com/pixil98/go-survival/internal/game"
)

// win hands the enemy's loot to the player and removes the enemy.
func (e *Engine) win(w *game.World, p *game.Player, enemy *game.Enemy) {
	var loot []string
	for _, item := range catalog.SortedKeys(enemy.Loot) {
		qty := enemy.Loot[item]
		if p.AddItem(w.Catalog, item, qty) {
			loot = append(loot, fmt.Sprintf("%d %s", qty, item))
		}
	}

	w.RemoveEnemy(enemy.ID)
	w.Combat.AddLog(fmt.Sprintf("%s is defeated!", enemy.Name))
	e.end(w, p)

	msg := fmt.Sprintf("You defeated %s.", enemy.Name)
	if len(loot) > 0 {
		msg += " Loot: " + strings.Join(loot, ", ") + "."
	}
	p.Notify(game.NotifySuccess, msg)

	slog.Info("combat won", "player", p.ID, "enemy", enemy.Type)
}

// end tears the session down and frees the player.
func (e *Engine) end(w *game.World, p *game.Player) {
	w.Combat = nil
	p.Busy = false
}
