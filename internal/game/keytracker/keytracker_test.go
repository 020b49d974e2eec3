package keytracker

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyRepeater(t *testing.T) {
	r := NewKeyRepeater(3, 2)

	var fired []int
	for tick := 0; tick < 10; tick++ {
		if r.Update(ebiten.KeyDown, true) {
			fired = append(fired, tick)
		}
	}
	want := []int{0, 3, 5, 7, 9}
	if len(fired) != len(want) {
		t.Fatalf("expected presses at %v, got %v", want, fired)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("press %d: expected tick %d, got %d", i, want[i], fired[i])
		}
	}

	if r.Update(ebiten.KeyDown, false) {
		t.Error("release must not fire")
	}
	if !r.Update(ebiten.KeyDown, true) {
		t.Error("pressing again should fire immediately")
	}
}

func TestKeyRepeaterKeysAreIndependent(t *testing.T) {
	r := NewKeyRepeater(0, 0)
	if r.Delay != DefaultDelay || r.Interval != DefaultInterval {
		t.Errorf("expected defaults, got %d/%d", r.Delay, r.Interval)
	}
	r.Update(ebiten.KeyUp, true)
	if !r.Update(ebiten.KeyLeft, true) {
		t.Error("a second key should fire on its own first tick")
	}
	r.Reset()
	if !r.Update(ebiten.KeyUp, true) {
		t.Error("reset should clear hold state")
	}
}
