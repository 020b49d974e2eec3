package menu

// Container is an anchor that frame views are mounted into.
type Container interface {
	Mount(name string) View
	Unmount(v View)
}

// View is the rendering side of one mounted frame. The core only pushes state
// into it; drawing is up to whoever walks the views.
type View interface {
	SetVisible(visible bool)
	SetElements(els []*Element)
	SetSelection(index int)
	SetField(key, value string)
	// Slot returns a named anchor inside this view where child frames mount.
	Slot(name string) Container
}
