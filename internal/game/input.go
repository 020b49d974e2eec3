package game

import (
	"simplequest/internal/game/keytracker"
	"simplequest/internal/menu"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type navBinding struct {
	keys  []ebiten.Key
	delta int
	axis  menu.Direction
}

var navBindings = []navBinding{
	{[]ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, -1, menu.Vertical},
	{[]ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, 1, menu.Vertical},
	{[]ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, -1, menu.Horizontal},
	{[]ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, 1, menu.Horizontal},
}

var (
	activateKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyNumpadEnter}
	cancelKeys   = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace}
)

// InputHandler turns keyboard state into numbered menu events.
type InputHandler struct {
	repeater *keytracker.KeyRepeater
	seq      uint64
}

func NewInputHandler() *InputHandler {
	return &InputHandler{repeater: keytracker.NewKeyRepeater(keytracker.DefaultDelay, keytracker.DefaultInterval)}
}

// Events returns the events produced this tick. Arrows repeat while held;
// activate and cancel fire once per press.
func (ih *InputHandler) Events() []menu.Event {
	var events []menu.Event
	for _, b := range navBindings {
		for _, key := range b.keys {
			if ih.repeater.IsKeyPressed(key) {
				events = append(events, menu.Navigate(ih.next(), b.delta, b.axis))
			}
		}
	}
	if anyJustPressed(activateKeys) {
		events = append(events, menu.Activate(ih.next()))
	}
	if anyJustPressed(cancelKeys) {
		events = append(events, menu.Cancel(ih.next()))
	}
	return events
}

func (ih *InputHandler) next() uint64 {
	ih.seq++
	return ih.seq
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
