package game

// CombatSession is the single encounter in progress between one player and
// one enemy.
type CombatSession struct {
	PlayerID   string   `json:"playerId"`
	EnemyID    string   `json:"enemyId"`
	PlayerTurn bool     `json:"isPlayerTurn"`
	Log        []string `json:"log"`

	// Seq identifies the session so a delayed enemy turn can tell whether
	// the encounter it was scheduled for is still running.
	Seq uint64 `json:"-"`
}

func (c *CombatSession) AddLog(line string) {
	c.Log = append(c.Log, line)
}
