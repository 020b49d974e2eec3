package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStack is returned when popping would remove the root frame.
	ErrEmptyStack = errors.New("menu: cannot pop the root frame")
	// ErrNotActive is returned when a push names an opener that is not the top frame.
	ErrNotActive = errors.New("menu: opener is not the active frame")
	// ErrReused is returned when pushing a frame that was already attached once.
	ErrReused = errors.New("menu: frame was already pushed")
)

// ConfigError reports a menu that was wired up wrong: an action with no handler,
// or a frame built without a usable selection list. It is not recoverable.
type ConfigError struct {
	Menu   string
	Action Action
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("menu %q: action %q: %s", e.Menu, e.Action, e.Reason)
	}
	return fmt.Sprintf("menu %q: %s", e.Menu, e.Reason)
}

// IsConfigError reports whether err carries a *ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
