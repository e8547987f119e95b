package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left, H, A - move piece left
	ActionRight           // Right, L, D - move piece right
	ActionRotate          // Up, K, W - rotate clockwise (start screen: raise start level)
	ActionSoftDrop        // Down, J, S - drop one row (start screen: lower start level)
	ActionConfirm         // Space, Enter - start game / hard drop
	ActionQuit            // Q, Ctrl+C - exit the program

	actionCount
)

// Buttons lists the five buttons the game itself reacts to, in a stable order.
var Buttons = [...]Action{ActionLeft, ActionRight, ActionRotate, ActionSoftDrop, ActionConfirm}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds which buttons are held down during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// InputEdges is the per-tick change of every button relative to the previous tick:
// +1 just pressed, -1 just released, 0 unchanged.
type InputEdges struct {
	delta [actionCount]int8
}

// Delta returns the state change of an action for this tick.
func (e InputEdges) Delta(a Action) int8 {
	if a <= ActionNone || a >= actionCount {
		return 0
	}
	return e.delta[a]
}

// Pressed reports whether the action went down this tick.
func (e InputEdges) Pressed(a Action) bool {
	return e.Delta(a) > 0
}

// Released reports whether the action went up this tick.
func (e InputEdges) Released(a Action) bool {
	return e.Delta(a) < 0
}

// Press records a +1 edge. Used by tests and scripted input.
func (e *InputEdges) Press(a Action) {
	if a > ActionNone && a < actionCount {
		e.delta[a] = 1
	}
}

// Any reports whether any button changed this tick.
func (e InputEdges) Any() bool {
	for _, d := range e.delta {
		if d != 0 {
			return true
		}
	}
	return false
}

// PressEdges builds edges with a +1 for each given action.
func PressEdges(actions ...Action) InputEdges {
	var e InputEdges
	for _, a := range actions {
		e.Press(a)
	}
	return e
}

// EdgeDetector turns consecutive held-state frames into edges.
// The zero value starts with every button released.
type EdgeDetector struct {
	prev [actionCount]bool
}

// Next compares cur against the previously seen frame and remembers cur.
func (d *EdgeDetector) Next(cur InputFrame) InputEdges {
	var e InputEdges
	for a := ActionNone + 1; a < actionCount; a++ {
		held := cur.Has(a)
		switch {
		case held && !d.prev[a]:
			e.delta[a] = 1
		case !held && d.prev[a]:
			e.delta[a] = -1
		}
		d.prev[a] = held
	}
	return e
}

// Reset forgets the previous frame.
func (d *EdgeDetector) Reset() {
	d.prev = [actionCount]bool{}
}
