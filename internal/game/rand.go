package game

// Rand is the random source used by the simulation. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Roll reports whether an event of the given probability happens.
func Roll(r Rand, chance float64) bool {
	return r.Float64() < chance
}
