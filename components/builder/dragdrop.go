package builder

// DragController interprets drag gestures over the document tree and turns a
// completed drop into exactly one mutation. Cancelled or aborted gestures
// produce zero mutations. The interaction model is single-pointer: grabbing
// while a drag is active replaces the gesture without mutating anything.
// The gesture-recognition layer is swappable; only this contract is fixed.
type DragController struct {
	state   dragState
	gesture DragGesture
}

type dragState int

const (
	dragIdle dragState = iota
	dragActive
)

// DragSource identifies what is being dragged.
type DragSource string

const (
	// SourcePalette drags a fresh component type from the palette.
	SourcePalette DragSource = "palette"
	// SourceCanvas drags an existing component out of a section.
	SourceCanvas DragSource = "canvas"
)

// DragGesture carries the grab-side coordinates of a drag.
type DragGesture struct {
	Source        DragSource
	ComponentType ComponentType // palette drags
	SectionID     string        // canvas drags
	Index         int           // canvas drags
}

// DropTarget carries the drop-side coordinates.
type DropTarget struct {
	SectionID string
	Index     int
}

// DragResult is the mutation a completed drop resolved to.
type DragResult struct {
	Document Document
	Mutated  bool
	Reason   string
}

// NewDragController starts in the idle state.
func NewDragController() *DragController {
	return &DragController{}
}

// Dragging reports whether a gesture is in flight.
func (c *DragController) Dragging() bool {
	return c.state == dragActive
}

// Grab starts a drag. A grab during an active drag replaces the gesture.
func (c *DragController) Grab(gesture DragGesture) {
	c.gesture = gesture
	c.state = dragActive
}

// Cancel aborts the gesture without mutating the document.
func (c *DragController) Cancel() {
	c.state = dragIdle
	c.gesture = DragGesture{}
}

// Drop completes the gesture against target. Exactly one mutation is issued
// for a valid drop; an idle controller or an unknown target section resolves
// to the unchanged document.
func (c *DragController) Drop(doc Document, reg ComponentRegistry, target DropTarget) DragResult {
	if c.state != dragActive {
		return DragResult{Document: doc}
	}
	gesture := c.gesture
	c.Cancel()

	if sectionIndex(doc, target.SectionID) < 0 {
		return DragResult{Document: doc}
	}

	switch gesture.Source {
	case SourcePalette:
		next := AddComponent(doc, reg, target.SectionID, gesture.ComponentType)
		return DragResult{Document: next, Mutated: true, Reason: "component.add"}
	case SourceCanvas:
		next := MoveComponent(doc, gesture.SectionID, gesture.Index, target.SectionID, target.Index)
		return DragResult{Document: next, Mutated: true, Reason: "component.move"}
	default:
		return DragResult{Document: doc}
	}
}
