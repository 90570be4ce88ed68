package board

// DragState tracks the group currently dragged over. Overlapping regions
// fire nested enter/leave pairs, so a plain boolean flickers; a reference
// counter settles it. UI-thread-only state, no locking, no persistence.
type DragState struct {
	counter int
	overID  string
}

// Enter records the pointer entering a group region
func (d *DragState) Enter(groupID string) {
	d.counter++
	d.overID = groupID
}

// Leave records the pointer leaving a region; the hover clears only when
// every nested enter has been matched
func (d *DragState) Leave() {
	if d.counter > 0 {
		d.counter--
	}
	if d.counter == 0 {
		d.overID = ""
	}
}

// Reset clears the state unconditionally, called on drop
func (d *DragState) Reset() {
	d.counter = 0
	d.overID = ""
}

// Over returns the id of the group currently hovered, or "" when none
func (d *DragState) Over() string {
	return d.overID
}
