package menu

// Handler runs when an enabled element bound to its action is activated.
type Handler func(el *Element) error

// Handlers is the explicit action table of one menu.
type Handlers map[Action]Handler

// Menu is what the Stack drives. Concrete menus embed *Frame for the defaults
// and override Pause, Unpause or MoveSelection where they need to.
type Menu interface {
	Base() *Frame
	Pause()
	Unpause()
	MoveSelection(delta int, axis Direction)
}

// Options configures a Frame.
type Options struct {
	Name       string
	Direction  Direction
	Cancelable bool
	// RowLength is the number of columns of a grid layout.
	RowLength int
}

// Frame is the base of every menu: its selection list, selection index and
// lifecycle state, plus the view it renders into once pushed.
type Frame struct {
	Name       string
	Direction  Direction
	Cancelable bool
	RowLength  int

	handlers   Handlers
	selections []*Element
	index      int
	onSelect   func(index int, el *Element)

	state     State
	stack     *Stack
	parent    Menu
	container Container
	view      View
}

// NewFrame returns a frame in StateConstructed. Handlers are checked against
// the elements passed to SetupSelections.
func NewFrame(opts Options, handlers Handlers) *Frame {
	if opts.RowLength <= 0 {
		opts.RowLength = 1
	}
	h := make(Handlers, len(handlers))
	for action, fn := range handlers {
		h[action] = fn
	}
	return &Frame{
		Name:       opts.Name,
		Direction:  opts.Direction,
		Cancelable: opts.Cancelable,
		RowLength:  opts.RowLength,
		handlers:   h,
		index:      -1,
	}
}

func (f *Frame) Base() *Frame { return f }

func (f *Frame) State() State { return f.state }

// Stack returns the stack the frame is on, or nil before push and after pop.
func (f *Frame) Stack() *Stack { return f.stack }

// Parent returns the menu that opened this one. It is a navigation link only.
func (f *Frame) Parent() Menu { return f.parent }

// Container returns the anchor this frame is mounted in.
func (f *Frame) Container() Container { return f.container }

// View returns the frame's view, or nil when not mounted.
func (f *Frame) View() View { return f.view }

func (f *Frame) Selections() []*Element {
	return append([]*Element(nil), f.selections...)
}

func (f *Frame) SelectionIndex() int { return f.index }

// Selected returns the selected element, or nil.
func (f *Frame) Selected() *Element {
	if f.index < 0 || f.index >= len(f.selections) {
		return nil
	}
	return f.selections[f.index]
}

// IndexOf returns the position of el in the selection list, or -1.
func (f *Frame) IndexOf(el *Element) int {
	for i, e := range f.selections {
		if e == el {
			return i
		}
	}
	return -1
}

// OnSelect installs the per-menu hook run after every selection change.
func (f *Frame) OnSelect(fn func(index int, el *Element)) {
	f.onSelect = fn
}

// SetupSelections replaces the selection list. Every element must carry an action
// this frame has a handler for; an empty list is a configuration error too.
func (f *Frame) SetupSelections(els []*Element) error {
	if len(els) == 0 {
		return &ConfigError{Menu: f.Name, Reason: "empty selection list"}
	}
	for _, el := range els {
		if el == nil {
			return &ConfigError{Menu: f.Name, Reason: "nil element in selection list"}
		}
		if el.Action == "" {
			return &ConfigError{Menu: f.Name, Reason: "element " + el.Label + " has no action"}
		}
		if _, ok := f.handlers[el.Action]; !ok {
			return &ConfigError{Menu: f.Name, Action: el.Action, Reason: "no handler registered"}
		}
	}
	f.selections = append([]*Element(nil), els...)
	for _, el := range f.selections {
		el.refresh()
	}
	f.index = -1
	f.render()
	f.SetSelection(FirstEnabled(f.selections))
	return nil
}

// SetSelection moves the selection to index. It is a no-op on an empty list or
// an out-of-range index; -1 clears the selection.
func (f *Frame) SetSelection(index int) {
	if len(f.selections) == 0 {
		return
	}
	if index < -1 || index >= len(f.selections) {
		return
	}
	f.index = index
	if f.view != nil {
		f.view.SetSelection(index)
	}
	if index >= 0 && f.onSelect != nil {
		f.onSelect(index, f.selections[index])
	}
}

// MoveSelection steps the selection. Input on the cross axis of a horizontal
// or vertical menu is ignored; a grid turns vertical steps into whole rows.
func (f *Frame) MoveSelection(delta int, axis Direction) {
	switch f.Direction {
	case Grid:
		if axis == Vertical {
			delta *= f.RowLength
		}
	default:
		if axis != f.Direction {
			return
		}
	}
	next := Advance(f.index, delta, f.Direction, f.selections)
	if next == f.index {
		return
	}
	f.SetSelection(next)
}

// Pause hides the view.
func (f *Frame) Pause() {
	if f.view != nil {
		f.view.SetVisible(false)
	}
}

// Unpause shows the view again.
func (f *Frame) Unpause() {
	if f.view != nil {
		f.view.SetVisible(true)
	}
}

// Refresh re-evaluates element predicates and re-renders. A selection left on
// an entry that became disabled moves on to the next enabled one.
func (f *Frame) Refresh() {
	for _, el := range f.selections {
		el.refresh()
	}
	f.render()
	if sel := f.Selected(); sel == nil || !sel.Enabled() {
		f.SetSelection(Advance(f.index, 1, f.Direction, f.selections))
	}
}

// Retain drops the elements keep rejects and returns how many were removed.
// The rest keep their order. The selection stays on its element when that
// element survives, otherwise it resets to the first enabled entry.
func (f *Frame) Retain(keep func(el *Element) bool) int {
	selected := f.Selected()
	kept := f.selections[:0:0]
	for _, el := range f.selections {
		if keep(el) {
			kept = append(kept, el)
		}
	}
	removed := len(f.selections) - len(kept)
	if removed == 0 {
		return 0
	}
	f.selections = kept
	f.render()

	next := FirstEnabled(kept)
	for i, el := range kept {
		if el == selected && el.Enabled() {
			next = i
			break
		}
	}
	f.index = -1
	if len(kept) == 0 {
		if f.view != nil {
			f.view.SetSelection(-1)
		}
		return removed
	}
	f.SetSelection(next)
	return removed
}

// SetField forwards a named text value to the view.
func (f *Frame) SetField(key, value string) {
	if f.view != nil {
		f.view.SetField(key, value)
	}
}

// Activate dispatches the selected element to its handler. Nothing selected or
// a disabled element is a no-op; an action without a handler is a ConfigError.
func (f *Frame) Activate() error {
	el := f.Selected()
	if el == nil || !el.Enabled() {
		return nil
	}
	handler, ok := f.handlers[el.Action]
	if !ok {
		return &ConfigError{Menu: f.Name, Action: el.Action, Reason: "no handler registered"}
	}
	return handler(el)
}

func (f *Frame) render() {
	if f.view != nil {
		f.view.SetElements(f.selections)
		f.view.SetSelection(f.index)
	}
}

func (f *Frame) attach(s *Stack, parent Menu, container Container) {
	f.stack = s
	f.parent = parent
	f.container = container
	f.view = container.Mount(f.Name)
	f.render()
	// Re-run the hook so the view shows the detail of the initial selection.
	if f.index >= 0 && f.onSelect != nil {
		f.onSelect(f.index, f.selections[f.index])
	}
}

func (f *Frame) detach() {
	if f.container != nil && f.view != nil {
		f.container.Unmount(f.view)
	}
	f.state = StatePopped
	f.stack = nil
	f.parent = nil
	f.container = nil
	f.view = nil
	f.handlers = nil
	f.onSelect = nil
}
