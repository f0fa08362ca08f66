package combat

// EnemyDamage is the enemy's base damage reduced by the player's armour,
// never below zero.
func EnemyDamage(base, defense int) int {
	return max(0, base-defense)
}

var damageMessages = []struct {
	maxDamage int
	verb3rd   string // "{attacker} {verb} {target}!"
}{
	{0, "misses"},
	{1, "scratches"},
	{2, "hits"},
	{4, "hits hard"},
	{6, "mauls"},
	{9, "devastates"},
}

// DamageVerb returns the 3rd person verb for a damage amount.
func DamageVerb(damage int) string {
	for _, msg := range damageMessages {
		if damage <= msg.maxDamage {
			return msg.verb3rd
		}
	}
	return "obliterates"
}
