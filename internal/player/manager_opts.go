package player

import "golang.org/x/time/rate"

type PlayerManagerOpt func(*PlayerManager)

// WithActionRate limits how many actions per second one connection may
// send, allowing bursts of up to burst actions.
func WithActionRate(perSecond float64, burst int) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.actionRate = rate.Limit(perSecond)
		m.actionBurst = burst
	}
}

// WithOutboxSize sets how many outgoing messages may queue per connection.
func WithOutboxSize(n int) PlayerManagerOpt {
	return func(m *PlayerManager) {
		m.outboxSize = n
	}
}
