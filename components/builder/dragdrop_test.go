package builder

import "testing"

func TestDropFromPaletteAddsExactlyOneComponent(t *testing.T) {
	reg := NewRegistry()
	doc := testDocument()
	controller := NewDragController()
	controller.Grab(DragGesture{Source: SourcePalette, ComponentType: TypeButton})
	result := controller.Drop(doc, reg, DropTarget{SectionID: "s1"})
	if !result.Mutated {
		t.Fatalf("expected mutation for a valid palette drop")
	}
	if result.Reason != "component.add" {
		t.Fatalf("unexpected reason %q", result.Reason)
	}
	if got := len(result.Document.Sections[0].Components); got != 1 {
		t.Fatalf("expected exactly one component added, got %d", got)
	}
	if controller.Dragging() {
		t.Fatalf("controller must return to idle after a drop")
	}
}

func TestCancelledDragProducesNoMutation(t *testing.T) {
	reg := NewRegistry()
	doc := testDocument("a")
	controller := NewDragController()
	controller.Grab(DragGesture{Source: SourcePalette, ComponentType: TypeText})
	controller.Cancel()
	result := controller.Drop(doc, reg, DropTarget{SectionID: "s1"})
	if result.Mutated {
		t.Fatalf("cancelled gesture must not mutate")
	}
	if got := len(result.Document.Sections[0].Components); got != 1 {
		t.Fatalf("document changed after cancelled drag: %d components", got)
	}
}

func TestDropOnUnknownSectionNoop(t *testing.T) {
	reg := NewRegistry()
	doc := testDocument("a")
	controller := NewDragController()
	controller.Grab(DragGesture{Source: SourcePalette, ComponentType: TypeText})
	result := controller.Drop(doc, reg, DropTarget{SectionID: "missing"})
	if result.Mutated {
		t.Fatalf("drop onto unknown section must not mutate")
	}
	if controller.Dragging() {
		t.Fatalf("gesture must be consumed even on an invalid drop")
	}
}

func TestCanvasDragMovesComponent(t *testing.T) {
	reg := NewRegistry()
	doc := testDocument("a", "b", "c")
	controller := NewDragController()
	controller.Grab(DragGesture{Source: SourceCanvas, SectionID: "s1", Index: 0})
	result := controller.Drop(doc, reg, DropTarget{SectionID: "s1", Index: 2})
	if !result.Mutated || result.Reason != "component.move" {
		t.Fatalf("expected move mutation, got %+v", result)
	}
	if got := componentOrder(result.Document, 0); !equalOrder(got, []string{"b", "c", "a"}) {
		t.Fatalf("unexpected order after canvas drag: %v", got)
	}
}

func TestGrabReplacesActiveGesture(t *testing.T) {
	reg := NewRegistry()
	doc := testDocument("a")
	controller := NewDragController()
	controller.Grab(DragGesture{Source: SourcePalette, ComponentType: TypeImage})
	controller.Grab(DragGesture{Source: SourceCanvas, SectionID: "s1", Index: 0})
	result := controller.Drop(doc, reg, DropTarget{SectionID: "s1", Index: 0})
	if !result.Mutated || result.Reason != "component.move" {
		t.Fatalf("second grab should win, got %+v", result)
	}
	if got := len(result.Document.Sections[0].Components); got != 1 {
		t.Fatalf("replaced gesture must not leak a palette insert, got %d components", got)
	}
}
