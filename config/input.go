package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionCrouch
	ActionJump
	ActionRun
	ActionTeleportDown
	ActionTeleportUp
	ActionCancel
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:         "none",
	ActionMoveLeft:     "left",
	ActionMoveRight:    "right",
	ActionCrouch:       "down",
	ActionJump:         "jump",
	ActionRun:          "run",
	ActionTeleportDown: "teleport-down",
	ActionTeleportUp:   "teleport-up",
	ActionCancel:       "cancel",
	ActionMenuUp:       "menu-up",
	ActionMenuDown:     "menu-down",
	ActionMenuSelect:   "menu-select",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
