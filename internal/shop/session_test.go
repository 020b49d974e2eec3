package shop

import (
	"path/filepath"
	"testing"

	"simplequest/internal/menu"
	"simplequest/internal/party"
)

func TestSessionQuitAndSave(t *testing.T) {
	env := testEnv(t, 70)
	give(t, env, "potion", 2)
	path := filepath.Join(t.TempDir(), "save.json")
	sess, err := NewSession(env, path)
	if err != nil {
		t.Fatal(err)
	}

	events := []menu.Event{
		menu.Navigate(1, 1, menu.Vertical),
		menu.Navigate(2, 1, menu.Vertical),
		menu.Navigate(3, 1, menu.Vertical),
		menu.Activate(4),
	}
	for _, ev := range events {
		if err := sess.Handle(ev); err != nil {
			t.Fatal(err)
		}
	}
	if !sess.Done() {
		t.Fatalf("expected Quit to be selected, town at %d", sess.Stack().Top().Base().SelectionIndex())
	}
	if err := sess.Save(); err != nil {
		t.Fatal(err)
	}

	loaded, err := party.LoadFromFile(path, env.Catalog)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Money() != 70 || loaded.CountOf("potion") != 2 {
		t.Errorf("save mismatch: money %d potions %d", loaded.Money(), loaded.CountOf("potion"))
	}
}

func TestSessionSwallowsRecoverableErrors(t *testing.T) {
	env := testEnv(t, 100)
	sess, err := NewSession(env, "")
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.Handle(menu.Activate(1)); err != nil {
		t.Fatal(err)
	}
	if err := sess.Handle(menu.Activate(2)); err != nil {
		t.Fatal(err)
	}
	if _, ok := sess.Stack().Top().(*BuyMenu); !ok {
		t.Fatalf("expected buy menu, got %T", sess.Stack().Top())
	}
	if err := env.Party.AddMoney(-100); err != nil {
		t.Fatal(err)
	}
	if err := sess.Handle(menu.Activate(3)); err != nil {
		t.Errorf("a refused purchase should not reach the front-end: %v", err)
	}
	if err := sess.Save(); err != nil {
		t.Errorf("saving without a path should be a no-op: %v", err)
	}
}

func TestSessionReportsConfigErrors(t *testing.T) {
	env := testEnv(t, 0)
	sess, err := NewSession(env, "")
	if err != nil {
		t.Fatal(err)
	}
	sess.Stack().Top().Base().Selected().Action = "teleport"
	if err := sess.Handle(menu.Activate(1)); !menu.IsConfigError(err) {
		t.Errorf("expected ConfigError, got %v", err)
	}
}
