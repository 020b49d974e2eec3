package shop

import (
	"errors"
	"log"

	"simplequest/internal/menu"
	"simplequest/internal/party"
)

// Session owns the menu stack of one visit to town. Front-ends feed it
// events and draw its screen panel.
type Session struct {
	env      *Env
	town     *TownMenu
	stack    *menu.Stack
	screen   *menu.Panel
	savePath string
}

// NewSession builds the town root and mounts it on a fresh screen panel.
// An empty savePath disables saving.
func NewSession(env *Env, savePath string) (*Session, error) {
	town, err := NewTownMenu(env)
	if err != nil {
		return nil, err
	}
	screen := menu.NewPanel("screen")
	stack, err := menu.NewStack(town, screen)
	if err != nil {
		return nil, err
	}
	return &Session{env: env, town: town, stack: stack, screen: screen, savePath: savePath}, nil
}

func (s *Session) Screen() *menu.Panel { return s.screen }

func (s *Session) Stack() *menu.Stack { return s.stack }

func (s *Session) Env() *Env { return s.env }

// Done reports whether the player has left through Quit.
func (s *Session) Done() bool { return s.town.Done() }

// Handle delivers one event. Only configuration errors are returned; anything
// the menus can recover from is logged and swallowed.
func (s *Session) Handle(ev menu.Event) error {
	err := s.stack.Handle(ev)
	switch {
	case err == nil:
		return nil
	case menu.IsConfigError(err):
		return err
	case errors.Is(err, menu.ErrEmptyStack):
		log.Printf("Warning: %v", err)
	case errors.Is(err, party.ErrInvariant):
		// already logged and resynced by the stack
	default:
		log.Printf("Warning: %v", err)
	}
	return nil
}

// Save writes the party to the session's save file.
func (s *Session) Save() error {
	if s.savePath == "" {
		return nil
	}
	return s.env.Party.SaveToFile(s.savePath)
}
