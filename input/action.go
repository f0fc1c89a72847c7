package input

import "github.com/lixenwraith/maze-master/maze"

// Action is a semantic input produced from a key event
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionConfirm: "confirm",
	ActionBack:    "back",
	ActionRestart: "restart",
	ActionQuit:    "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction resolves an action name as used in keymap files
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name && Action(i) != ActionNone {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// Direction maps movement actions to maze directions, maze.None otherwise
func (a Action) Direction() maze.Direction {
	switch a {
	case ActionUp:
		return maze.North
	case ActionDown:
		return maze.South
	case ActionLeft:
		return maze.West
	case ActionRight:
		return maze.East
	default:
		return maze.None
	}
}
