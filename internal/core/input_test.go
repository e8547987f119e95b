package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionLeft) {
		t.Fatal("zero frame should hold nothing")
	}

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("Set actions should be held")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should release all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestEdgeDetector(t *testing.T) {
	var d EdgeDetector

	held := NewInputFrame()
	held.Set(ActionRotate)

	tests := []struct {
		name  string
		frame InputFrame
		want  map[Action]int8
	}{
		{"press", held, map[Action]int8{ActionRotate: 1}},
		{"hold", held, map[Action]int8{ActionRotate: 0}},
		{"release", NewInputFrame(), map[Action]int8{ActionRotate: -1}},
		{"idle", NewInputFrame(), map[Action]int8{ActionRotate: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := d.Next(tc.frame)
			for a, want := range tc.want {
				if got := e.Delta(a); got != want {
					t.Errorf("Delta(%s) = %d, expected %d", a, got, want)
				}
			}
			if e.Delta(ActionLeft) != 0 {
				t.Error("untouched button should report no change")
			}
		})
	}
}

func TestEdgeDetectorOnlyPressEdgesCount(t *testing.T) {
	var d EdgeDetector
	held := NewInputFrame()
	held.Set(ActionSoftDrop)

	presses := 0
	for i := 0; i < 10; i++ {
		if d.Next(held).Pressed(ActionSoftDrop) {
			presses++
		}
	}
	if presses != 1 {
		t.Errorf("holding a button should press it once, got %d presses", presses)
	}

	d.Reset()
	if !d.Next(held).Pressed(ActionSoftDrop) {
		t.Error("after Reset a held button should press again")
	}
}

func TestPressEdges(t *testing.T) {
	e := PressEdges(ActionLeft, ActionConfirm)

	if !e.Pressed(ActionLeft) || !e.Pressed(ActionConfirm) {
		t.Error("PressEdges should press the given actions")
	}
	if e.Pressed(ActionRight) || e.Released(ActionLeft) {
		t.Error("PressEdges should not touch other actions")
	}
	if !e.Any() {
		t.Error("Any should report a change")
	}
	if (InputEdges{}).Any() {
		t.Error("zero edges should report no change")
	}
	if e.Delta(ActionNone) != 0 || e.Delta(Action(99)) != 0 {
		t.Error("invalid actions should report no change")
	}
}

func TestActionString(t *testing.T) {
	if ActionSoftDrop.String() != "SoftDrop" {
		t.Errorf("ActionSoftDrop.String() = %q", ActionSoftDrop.String())
	}
	if Action(42).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
