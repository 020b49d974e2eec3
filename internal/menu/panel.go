package menu

// Panel is a retained View/Container tree. Front-ends draw it; tests inspect it.
type Panel struct {
	Name      string
	Visible   bool
	Elements  []*Element
	Selection int

	fields     map[string]string
	fieldOrder []string
	slots      map[string]*Panel
	slotOrder  []string
	children   []*Panel
}

// NewPanel returns a visible, empty panel.
func NewPanel(name string) *Panel {
	return &Panel{
		Name:      name,
		Visible:   true,
		Selection: -1,
		fields:    make(map[string]string),
		slots:     make(map[string]*Panel),
	}
}

func (p *Panel) Mount(name string) View {
	child := NewPanel(name)
	p.children = append(p.children, child)
	return child
}

func (p *Panel) Unmount(v View) {
	child, ok := v.(*Panel)
	if !ok {
		return
	}
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

func (p *Panel) SetVisible(visible bool) { p.Visible = visible }

func (p *Panel) SetElements(els []*Element) {
	p.Elements = append(p.Elements[:0:0], els...)
}

func (p *Panel) SetSelection(index int) { p.Selection = index }

// SetField sets a named text value; an empty value removes the field.
func (p *Panel) SetField(key, value string) {
	if value == "" {
		if _, ok := p.fields[key]; ok {
			delete(p.fields, key)
			for i, k := range p.fieldOrder {
				if k == key {
					p.fieldOrder = append(p.fieldOrder[:i], p.fieldOrder[i+1:]...)
					break
				}
			}
		}
		return
	}
	if _, ok := p.fields[key]; !ok {
		p.fieldOrder = append(p.fieldOrder, key)
	}
	p.fields[key] = value
}

func (p *Panel) Field(key string) string { return p.fields[key] }

// Fields returns field keys in the order they were first set.
func (p *Panel) Fields() []string {
	return append([]string(nil), p.fieldOrder...)
}

func (p *Panel) Slot(name string) Container {
	return p.slot(name)
}

func (p *Panel) slot(name string) *Panel {
	if s, ok := p.slots[name]; ok {
		return s
	}
	s := NewPanel(name)
	p.slots[name] = s
	p.slotOrder = append(p.slotOrder, name)
	return s
}

// Children returns the views mounted directly in this panel.
func (p *Panel) Children() []*Panel {
	return append([]*Panel(nil), p.children...)
}

// Slots returns the named anchors of this panel in creation order.
func (p *Panel) Slots() []*Panel {
	out := make([]*Panel, 0, len(p.slotOrder))
	for _, name := range p.slotOrder {
		out = append(out, p.slots[name])
	}
	return out
}

// Walk visits p and every visible descendant depth-first: fields and
// elements of a panel come before its slots, slots before mounted children.
func (p *Panel) Walk(visit func(panel *Panel, depth int)) {
	p.walk(visit, 0)
}

func (p *Panel) walk(visit func(*Panel, int), depth int) {
	if !p.Visible {
		return
	}
	visit(p, depth)
	for _, s := range p.Slots() {
		s.walk(visit, depth+1)
	}
	for _, c := range p.children {
		c.walk(visit, depth+1)
	}
}
