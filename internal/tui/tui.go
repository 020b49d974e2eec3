// Package tui runs a shop session in the terminal.
package tui

import (
	"fmt"
	"log"
	"strings"

	"simplequest/internal/menu"
	"simplequest/internal/shop"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = " [black:gold] arrows [-:-] move  [black:gold] enter [-:-] choose  [black:gold] esc [-:-] back  [black:gold] ctrl-c [-:-] quit"

type UI struct {
	app     *tview.Application
	body    *tview.TextView
	status  *tview.TextView
	session *shop.Session
	seq     uint64
	err     error
}

func New(session *shop.Session) *UI {
	ui := &UI{
		app:     tview.NewApplication(),
		session: session,
	}
	ui.body = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	ui.body.SetBorder(true).SetTitle(" Simple Quest ")
	ui.status = tview.NewTextView().SetDynamicColors(true).SetText(helpText)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(ui.body, 0, 1, false).
		AddItem(ui.status, 1, 0, false)
	ui.app.SetRoot(root, true)
	ui.app.SetInputCapture(ui.handleKey)
	ui.refresh()
	return ui
}

// Run blocks until the player quits. It returns the configuration error that
// stopped the session, if any.
func (ui *UI) Run() error {
	prev := log.Writer()
	log.SetOutput(ui)
	defer log.SetOutput(prev)
	if err := ui.app.Run(); err != nil {
		return err
	}
	return ui.err
}

func (ui *UI) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyCtrlC {
		ui.app.Stop()
		return nil
	}
	ui.seq++
	mev, ok := eventFor(ev, ui.seq)
	if !ok {
		return ev
	}
	ui.status.SetText(helpText)
	if err := ui.session.Handle(mev); err != nil {
		ui.err = err
		ui.app.Stop()
		return nil
	}
	if ui.session.Done() {
		if err := ui.session.Save(); err != nil {
			log.Printf("Warning: Failed to save party: %v", err)
		}
		ui.app.Stop()
		return nil
	}
	ui.refresh()
	return nil
}

// Write shows log output on the status line while the terminal is owned by tview.
func (ui *UI) Write(p []byte) (int, error) {
	msg := strings.TrimSpace(string(p))
	ui.status.SetText(fmt.Sprintf("[red]%s[-] |%s", tview.Escape(msg), helpText))
	return len(p), nil
}

func (ui *UI) refresh() {
	ui.body.SetText(Render(ui.session.Screen()))
}

// eventFor maps a terminal key to a menu event.
func eventFor(ev *tcell.EventKey, seq uint64) (menu.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return menu.Navigate(seq, -1, menu.Vertical), true
	case tcell.KeyDown:
		return menu.Navigate(seq, 1, menu.Vertical), true
	case tcell.KeyLeft:
		return menu.Navigate(seq, -1, menu.Horizontal), true
	case tcell.KeyRight:
		return menu.Navigate(seq, 1, menu.Horizontal), true
	case tcell.KeyEnter:
		return menu.Activate(seq), true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return menu.Cancel(seq), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return menu.Navigate(seq, -1, menu.Vertical), true
		case 'j', 's':
			return menu.Navigate(seq, 1, menu.Vertical), true
		case 'h', 'a':
			return menu.Navigate(seq, -1, menu.Horizontal), true
		case 'l', 'd':
			return menu.Navigate(seq, 1, menu.Horizontal), true
		case ' ':
			return menu.Activate(seq), true
		case 'q':
			return menu.Cancel(seq), true
		}
	}
	return menu.Event{}, false
}

// Render formats the visible panels as tview color-tagged text.
func Render(root *menu.Panel) string {
	var b strings.Builder
	root.Walk(func(p *menu.Panel, depth int) {
		if len(p.Fields()) == 0 && len(p.Elements) == 0 {
			return
		}
		indent := strings.Repeat("  ", max(depth-1, 0))
		for _, key := range p.Fields() {
			value := tview.Escape(p.Field(key))
			switch key {
			case "name", "title", "item":
				fmt.Fprintf(&b, "%s[::b]%s[::-]\n", indent, value)
			case "description":
				fmt.Fprintf(&b, "%s[::i]%s[::-]\n", indent, value)
			default:
				fmt.Fprintf(&b, "%s[gold]%s:[-] %s\n", indent, key, value)
			}
		}
		for i, el := range p.Elements {
			line := tview.Escape(el.Label)
			if el.Detail != "" {
				line += "  " + tview.Escape(el.Detail)
			}
			switch {
			case i == p.Selection:
				fmt.Fprintf(&b, "%s[black:gold]> %s[-:-]\n", indent, line)
			case !el.Enabled():
				fmt.Fprintf(&b, "%s[gray]  %s[-]\n", indent, line)
			default:
				fmt.Fprintf(&b, "%s  %s\n", indent, line)
			}
		}
		b.WriteString("\n")
	})
	return b.String()
}
