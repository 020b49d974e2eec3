package menu

import (
	"errors"
	"fmt"
	"log"
)

// Stack orders the open menus. The top frame is the only active one and the
// only one that receives input; every frame below it is paused.
type Stack struct {
	frames  []Menu
	lastSeq uint64
}

// NewStack makes root the bottom frame, mounted in container. The root can
// never be popped.
func NewStack(root Menu, container Container) (*Stack, error) {
	if root == nil {
		return nil, errors.New("menu: nil root")
	}
	if container == nil {
		return nil, &ConfigError{Menu: root.Base().Name, Reason: "nil container"}
	}
	f := root.Base()
	if f.state != StateConstructed {
		return nil, ErrReused
	}
	s := &Stack{}
	f.attach(s, nil, container)
	s.frames = append(s.frames, root)
	f.state = StateActive
	root.Unpause()
	return s, nil
}

// Len returns the number of frames on the stack.
func (s *Stack) Len() int { return len(s.frames) }

// Top returns the active menu.
func (s *Stack) Top() Menu { return s.frames[len(s.frames)-1] }

// States returns the lifecycle state of every frame, bottom first.
func (s *Stack) States() []State {
	states := make([]State, len(s.frames))
	for i, m := range s.frames {
		states[i] = m.Base().state
	}
	return states
}

// Push pauses the active menu and makes child active, mounted in container.
// opener must be the active menu; it becomes the child's parent.
func (s *Stack) Push(child, opener Menu, container Container) error {
	if child == nil {
		return errors.New("menu: nil child")
	}
	cf := child.Base()
	if container == nil {
		return &ConfigError{Menu: cf.Name, Reason: "nil container"}
	}
	if cf.state != StateConstructed {
		return ErrReused
	}
	top := s.Top()
	if opener != top {
		return fmt.Errorf("%w: push of %q", ErrNotActive, cf.Name)
	}

	top.Base().state = StatePaused
	top.Pause()

	cf.attach(s, opener, container)
	s.frames = append(s.frames, child)
	cf.state = StateActive
	child.Unpause()
	return nil
}

// Pop destroys the active menu and resumes the one below it. Popping the root
// returns ErrEmptyStack and leaves the stack as it was.
func (s *Stack) Pop() error {
	if len(s.frames) <= 1 {
		return ErrEmptyStack
	}
	top := s.Top()
	s.frames = s.frames[:len(s.frames)-1]
	top.Base().detach()

	next := s.Top()
	next.Base().state = StateActive
	next.Unpause()
	return nil
}

// Navigate forwards a selection step to the active menu.
func (s *Stack) Navigate(delta int, axis Direction) {
	s.Top().MoveSelection(delta, axis)
}

// Activate runs the handler of the active menu's selected element. A refused
// action resyncs the menu through its Unpause step before the error is returned.
func (s *Stack) Activate() error {
	top := s.Top()
	f := top.Base()
	err := f.Activate()
	if err == nil || IsConfigError(err) {
		return err
	}
	log.Printf("Warning: %s rejected action: %v", f.Name, err)
	if f.state == StateActive {
		top.Unpause()
	}
	return err
}

// Cancel pops the active menu when it is cancelable and ignores the input otherwise.
func (s *Stack) Cancel() error {
	if !s.Top().Base().Cancelable {
		return nil
	}
	return s.Pop()
}

// Handle routes one input event to the active menu. Events must carry
// increasing sequence numbers; a replayed or stale event is dropped, which is
// what stops a double activation. Sequence 0 bypasses the check.
func (s *Stack) Handle(ev Event) error {
	if ev.Seq != 0 {
		if ev.Seq <= s.lastSeq {
			return nil
		}
		s.lastSeq = ev.Seq
	}
	switch ev.Kind {
	case EventNavigate:
		s.Navigate(ev.Delta, ev.Axis)
		return nil
	case EventActivate:
		return s.Activate()
	case EventCancel:
		return s.Cancel()
	default:
		return fmt.Errorf("menu: unknown event kind %d", ev.Kind)
	}
}
