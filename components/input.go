package components

import (
	cfg "github.com/automoto/duality/config"
)

// InputSnapshot stores the current and previous frame's pressed state for
// all actions. It is captured once per frame by the host and passed by value.
type InputSnapshot struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Advance returns the snapshot for the next frame: this frame's state moves
// to Previous and current becomes the new state.
func (s InputSnapshot) Advance(current [cfg.ActionCount]bool) InputSnapshot {
	return InputSnapshot{Current: current, Previous: s.Current}
}

func (s InputSnapshot) IsPressed(a cfg.ActionID) bool {
	return s.Current[a]
}

func (s InputSnapshot) JustPressed(a cfg.ActionID) bool {
	return s.Current[a] && !s.Previous[a]
}

// Pressed builds a snapshot with the given actions held this frame and
// nothing held the frame before.
func Pressed(actions ...cfg.ActionID) InputSnapshot {
	var s InputSnapshot
	for _, a := range actions {
		s.Current[a] = true
	}
	return s
}
