package viewer

import (
	"unicode"

	"github.com/gogpu/bmpview"
)

// Action is what a key press asks the viewer to do.
type Action uint8

// Actions.
const (
	// ActionNone ignores the key.
	ActionNone Action = iota
	// ActionSelect switches to a filter.
	ActionSelect
	// ActionOpen asks the front end for a file to load.
	ActionOpen
	// ActionQuit ends the session.
	ActionQuit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSelect:
		return "Select"
	case ActionOpen:
		return "Open"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// filterKeys maps upper-case keys to filters.
var filterKeys = map[rune]bmpview.FilterKind{
	'G': bmpview.Grayscale,
	'S': bmpview.Sepia,
	'R': bmpview.Reflect,
	'B': bmpview.Blur,
	'E': bmpview.EdgeDetect,
	'O': bmpview.Identity,
}

// KeyAction maps a key to an action. For ActionSelect the filter to
// select is returned too. Keys are case-insensitive.
func KeyAction(key rune) (Action, bmpview.FilterKind) {
	key = unicode.ToUpper(key)
	if k, ok := filterKeys[key]; ok {
		return ActionSelect, k
	}
	switch key {
	case 'F':
		return ActionOpen, bmpview.Identity
	case 'Q':
		return ActionQuit, bmpview.Identity
	}
	return ActionNone, bmpview.Identity
}
