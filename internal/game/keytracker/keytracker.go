// Package keytracker turns held keys into discrete presses for menu input.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Default timing in ticks (60 per second).
const (
	DefaultDelay    = 24
	DefaultInterval = 6
)

// KeyRepeater reports a press on the tick a key goes down and then, while the
// key is held, once every Interval ticks after an initial Delay.
type KeyRepeater struct {
	Delay    int
	Interval int

	held map[ebiten.Key]int
}

func NewKeyRepeater(delay, interval int) *KeyRepeater {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &KeyRepeater{Delay: delay, Interval: interval, held: make(map[ebiten.Key]int)}
}

// IsKeyPressed polls ebiten for key and reports whether it fires this tick.
// Call it once per key per tick.
func (r *KeyRepeater) IsKeyPressed(key ebiten.Key) bool {
	return r.Update(key, ebiten.IsKeyPressed(key))
}

// Update advances key's hold counter with the given state.
func (r *KeyRepeater) Update(key ebiten.Key, down bool) bool {
	if !down {
		delete(r.held, key)
		return false
	}
	ticks := r.held[key]
	r.held[key] = ticks + 1
	if ticks == 0 {
		return true
	}
	return ticks >= r.Delay && (ticks-r.Delay)%r.Interval == 0
}

// Reset forgets every held key.
func (r *KeyRepeater) Reset() {
	clear(r.held)
}
