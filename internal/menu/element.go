package menu

// Action names the handler an element triggers when activated.
type Action string

// Element is one selectable entry of a menu.
type Element struct {
	Label  string
	Detail string // secondary text, e.g. a price
	Key    string // opaque payload for the owning menu
	Icon   string
	Action Action

	enabled bool
	when    func() bool
}

// NewElement returns an enabled element bound to action.
func NewElement(label string, action Action) *Element {
	return &Element{Label: label, Action: action, enabled: true}
}

func (e *Element) Enabled() bool { return e.enabled }

// SetEnabled fixes the enabled flag and drops any predicate.
func (e *Element) SetEnabled(enabled bool) {
	e.when = nil
	e.enabled = enabled
}

// When derives the enabled flag from pred, now and on every Refresh.
func (e *Element) When(pred func() bool) *Element {
	e.when = pred
	e.refresh()
	return e
}

func (e *Element) refresh() {
	if e.when != nil {
		e.enabled = e.when()
	}
}
