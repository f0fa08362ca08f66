package game

import (
	"time"

	"github.com/pixil98/go-survival/internal/rules"
)

// Decay applies elapsed-time vital loss. Hunger and thirst at zero drain
// health, as does every status with a configured penalty.
func (p *Player) Decay(r rules.Decay, dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}

	p.Hunger = max(0, p.Hunger-r.Hunger*secs)
	p.Thirst = max(0, p.Thirst-r.Thirst*secs)
	p.Sleep = max(0, p.Sleep-r.Sleep*secs)

	if p.Hunger == 0 {
		p.Health -= r.StarvePenalty * secs
	}
	if p.Thirst == 0 {
		p.Health -= r.ThirstPenalty * secs
	}
	for _, s := range p.Status {
		p.Health -= r.StatusPenalty[s] * secs
	}

	p.Health = max(0, p.Health)
}
