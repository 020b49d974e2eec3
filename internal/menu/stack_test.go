package menu

import (
	"errors"
	"fmt"
	"testing"
)

func newTestStack(t *testing.T) (*Stack, *testMenu, *Panel) {
	t.Helper()
	root := newTestMenu(t, Options{Name: "root"}, "one", "two")
	panel := NewPanel("screen")
	s, err := NewStack(root, panel)
	if err != nil {
		t.Fatalf("NewStack: %v", err)
	}
	return s, root, panel
}

func countActive(s *Stack) int {
	n := 0
	for _, st := range s.States() {
		if st == StateActive {
			n++
		}
	}
	return n
}

func TestNewStack(t *testing.T) {
	s, root, panel := newTestStack(t)
	if s.Len() != 1 || s.Top() != Menu(root) {
		t.Fatalf("expected root on top, len %d", s.Len())
	}
	if root.State() != StateActive {
		t.Errorf("root should be active, got %s", root.State())
	}
	if root.unpauses != 1 {
		t.Errorf("expected one Unpause on attach, got %d", root.unpauses)
	}
	if len(panel.Children()) != 1 || panel.Children()[0].Name != "root" {
		t.Errorf("root view not mounted")
	}

	if _, err := NewStack(root, panel); !errors.Is(err, ErrReused) {
		t.Errorf("expected ErrReused for a second stack, got %v", err)
	}
	fresh := newTestMenu(t, Options{Name: "fresh"}, "x")
	if _, err := NewStack(fresh, nil); !IsConfigError(err) {
		t.Errorf("expected ConfigError for nil container, got %v", err)
	}
}

func TestPushPop(t *testing.T) {
	s, root, panel := newTestStack(t)

	child := newTestMenu(t, Options{Name: "child", Cancelable: true}, "a", "b")
	if err := s.Push(child, root, root.View().Slot("body")); err != nil {
		t.Fatal(err)
	}
	if root.State() != StatePaused || child.State() != StateActive {
		t.Errorf("expected paused/active, got %s/%s", root.State(), child.State())
	}
	if root.pauses != 1 {
		t.Errorf("root should be paused once, got %d", root.pauses)
	}
	if child.Parent() != Menu(root) || child.Stack() != s {
		t.Errorf("child links not set")
	}
	rootView := panel.Children()[0]
	if rootView.Visible {
		t.Errorf("paused root view should be hidden")
	}
	body := rootView.Slots()[0]
	if len(body.Children()) != 1 || body.Children()[0].Name != "child" {
		t.Fatalf("child view not mounted in slot")
	}

	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if child.State() != StatePopped || root.State() != StateActive {
		t.Errorf("expected popped/active, got %s/%s", child.State(), root.State())
	}
	if len(body.Children()) != 0 {
		t.Errorf("child view not unmounted")
	}
	if !rootView.Visible {
		t.Errorf("root view should be visible again")
	}
	if root.unpauses != 2 {
		t.Errorf("expected root Unpause on resume, got %d", root.unpauses)
	}
	if child.Stack() != nil || child.View() != nil {
		t.Errorf("popped frame should drop its references")
	}
}

func TestPushErrors(t *testing.T) {
	s, root, panel := newTestStack(t)
	child := newTestMenu(t, Options{Name: "child"}, "a")

	t.Run("Opener must be active", func(t *testing.T) {
		if err := s.Push(child, root, panel); err != nil {
			t.Fatal(err)
		}
		other := newTestMenu(t, Options{Name: "other"}, "a")
		err := s.Push(other, root, panel)
		if !errors.Is(err, ErrNotActive) {
			t.Errorf("expected ErrNotActive, got %v", err)
		}
		if s.Len() != 2 {
			t.Errorf("failed push must not change the stack, len %d", s.Len())
		}
	})

	t.Run("Popped frame cannot be pushed again", func(t *testing.T) {
		if err := s.Pop(); err != nil {
			t.Fatal(err)
		}
		if err := s.Push(child, root, panel); !errors.Is(err, ErrReused) {
			t.Errorf("expected ErrReused, got %v", err)
		}
	})

	t.Run("Nil container", func(t *testing.T) {
		fresh := newTestMenu(t, Options{Name: "fresh"}, "a")
		if err := s.Push(fresh, root, nil); !IsConfigError(err) {
			t.Errorf("expected ConfigError, got %v", err)
		}
	})
}

func TestPopRoot(t *testing.T) {
	s, root, _ := newTestStack(t)
	if err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("expected ErrEmptyStack, got %v", err)
	}
	if s.Len() != 1 || root.State() != StateActive {
		t.Errorf("root must survive a rejected pop")
	}
}

func TestSingleActiveFrame(t *testing.T) {
	s, _, _ := newTestStack(t)
	// push 3, pop 1, push 2, pop 4
	ops := []bool{true, true, true, false, true, true, false, false, false, false}
	for i, push := range ops {
		if push {
			top := s.Top()
			m := newTestMenu(t, Options{Name: fmt.Sprintf("m%d", i), Cancelable: true}, "x")
			if err := s.Push(m, top, top.Base().View().Slot("body")); err != nil {
				t.Fatalf("op %d: %v", i, err)
			}
		} else if err := s.Pop(); err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
		if s.Len() < 1 {
			t.Fatalf("op %d: stack emptied", i)
		}
		if n := countActive(s); n != 1 {
			t.Fatalf("op %d: expected one active frame, got %d (%v)", i, n, s.States())
		}
		if s.Top().Base().State() != StateActive {
			t.Fatalf("op %d: top is not the active frame", i)
		}
	}
	if s.Len() != 1 {
		t.Errorf("expected only root left, len %d", s.Len())
	}
}

func TestCancel(t *testing.T) {
	s, root, _ := newTestStack(t)
	if err := s.Cancel(); err != nil {
		t.Errorf("cancel on non-cancelable root should be ignored, got %v", err)
	}

	fixed := newTestMenu(t, Options{Name: "fixed"}, "a")
	if err := s.Push(fixed, root, root.View().Slot("body")); err != nil {
		t.Fatal(err)
	}
	if err := s.Cancel(); err != nil || s.Len() != 2 {
		t.Errorf("non-cancelable frame should stay, len %d err %v", s.Len(), err)
	}

	loose := newTestMenu(t, Options{Name: "loose", Cancelable: true}, "a")
	if err := s.Push(loose, fixed, fixed.View().Slot("body")); err != nil {
		t.Fatal(err)
	}
	if err := s.Cancel(); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 || s.Top() != Menu(fixed) {
		t.Errorf("cancel should pop exactly one frame")
	}
}

func TestHandleRoutesToTop(t *testing.T) {
	s, root, _ := newTestStack(t)
	child := newTestMenu(t, Options{Name: "child", Cancelable: true}, "a", "b", "c")
	if err := s.Push(child, root, root.View().Slot("body")); err != nil {
		t.Fatal(err)
	}

	if err := s.Handle(Navigate(1, 1, Vertical)); err != nil {
		t.Fatal(err)
	}
	if child.SelectionIndex() != 1 || root.SelectionIndex() != 0 {
		t.Errorf("navigation should only reach the top, got child %d root %d",
			child.SelectionIndex(), root.SelectionIndex())
	}
	if err := s.Handle(Activate(2)); err != nil {
		t.Fatal(err)
	}
	if len(child.picked) != 1 || len(root.picked) != 0 {
		t.Errorf("activation should only reach the top")
	}
	if err := s.Handle(Cancel(3)); err != nil {
		t.Fatal(err)
	}
	if s.Top() != Menu(root) {
		t.Errorf("cancel should have popped the child")
	}
}

func TestHandleDropsReplayedEvents(t *testing.T) {
	s, root, _ := newTestStack(t)
	if err := s.Handle(Activate(5)); err != nil {
		t.Fatal(err)
	}
	_ = s.Handle(Activate(5))
	_ = s.Handle(Activate(4))
	if len(root.picked) != 1 {
		t.Errorf("expected one activation, got %d", len(root.picked))
	}
	_ = s.Handle(Activate(0))
	_ = s.Handle(Activate(0))
	if len(root.picked) != 3 {
		t.Errorf("sequence 0 should bypass the guard, got %d", len(root.picked))
	}
}

func TestHandleUnknownKind(t *testing.T) {
	s, _, _ := newTestStack(t)
	if err := s.Handle(Event{Kind: EventKind(99)}); err == nil {
		t.Error("expected error for unknown event kind")
	}
}

func TestActivateConfigError(t *testing.T) {
	s, root, _ := newTestStack(t)
	root.Selected().Action = "nowhere"
	unpauses := root.unpauses
	err := s.Handle(Activate(1))
	if !IsConfigError(err) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if root.unpauses != unpauses {
		t.Errorf("config errors must not trigger a resync")
	}
}

func TestActivateRejectedResyncs(t *testing.T) {
	s, root, _ := newTestStack(t)
	rejected := errors.New("not enough money")
	root.pickErr = rejected
	unpauses := root.unpauses
	err := s.Activate()
	if !errors.Is(err, rejected) {
		t.Fatalf("expected rejection to surface, got %v", err)
	}
	if root.unpauses != unpauses+1 {
		t.Errorf("expected resync through Unpause, got %d calls", root.unpauses-unpauses)
	}
	if root.State() != StateActive || s.Len() != 1 {
		t.Errorf("rejected action must not change the stack")
	}
}

func TestPanelWalkSkipsHidden(t *testing.T) {
	s, root, panel := newTestStack(t)
	child := newTestMenu(t, Options{Name: "child"}, "a")
	if err := s.Push(child, root, panel); err != nil {
		t.Fatal(err)
	}
	var names []string
	panel.Walk(func(p *Panel, _ int) { names = append(names, p.Name) })
	if len(names) != 2 || names[0] != "screen" || names[1] != "child" {
		t.Errorf("expected [screen child], got %v", names)
	}
}
