package board

import "testing"

func TestDragStateNestedEnterLeave(t *testing.T) {
	var d DragState

	// Entering a child region inside the same group fires a second enter
	// before the first leave
	d.Enter("sec-a")
	d.Enter("sec-a")
	d.Leave()

	if d.Over() != "sec-a" {
		t.Errorf("Expected hover to survive nested leave, got %q", d.Over())
	}

	d.Leave()
	if d.Over() != "" {
		t.Errorf("Expected hover cleared after final leave, got %q", d.Over())
	}
}

func TestDragStateCrossGroup(t *testing.T) {
	var d DragState

	d.Enter("sec-a")
	d.Enter("sec-b")
	if d.Over() != "sec-b" {
		t.Errorf("Expected latest group to win, got %q", d.Over())
	}
}

func TestDragStateReset(t *testing.T) {
	var d DragState

	d.Enter("sec-a")
	d.Enter("sec-a")
	d.Reset()

	if d.Over() != "" {
		t.Errorf("Expected empty hover after reset, got %q", d.Over())
	}

	// Extra leaves after reset must not underflow
	d.Leave()
	d.Enter("sec-b")
	if d.Over() != "sec-b" {
		t.Errorf("Expected fresh enter to register after reset, got %q", d.Over())
	}
}
