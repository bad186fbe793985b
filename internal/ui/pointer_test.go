package ui

import (
	"testing"

	"github.com/ingyamilmolinar/plugboard/core/geom"
)

var (
	leftBox  = geom.RectFromPosSize(geom.Pt(0, 0), geom.V(10, 10))
	rightBox = geom.RectFromPosSize(geom.Pt(100, 0), geom.V(10, 10))
)

// idle runs one frame with the button up so the widgets register as targets.
func idle(in *fakeInput, p *pointer, show func()) {
	in.down = false
	p.begin()
	show()
	p.end()
}

func TestPointerCaptureDragRelease(t *testing.T) {
	in := installInput(t)
	var p pointer
	in.at(5, 5, false)
	idle(in, &p, func() { p.interact("a", leftBox, SenseDrag) })

	in.at(5, 5, true)
	p.begin()
	if p.captured != "a" {
		t.Fatalf("captured=%q want a", p.captured)
	}
	r := p.interact("a", leftBox, SenseDrag)
	if !r.Hovered || !r.Dragged || r.DragDelta != geom.Zero {
		t.Fatalf("press frame: %+v", r)
	}
	p.end()

	in.at(105, 5, true)
	p.begin()
	if r := p.interact("b", rightBox, SenseHover); r.Hovered {
		t.Fatalf("other widget hovered while a drag holds the pointer")
	}
	r = p.interact("a", leftBox, SenseDrag)
	if !r.Dragged || r.DragDelta != geom.V(100, 0) {
		t.Fatalf("drag frame: %+v", r)
	}
	p.end()

	in.at(105, 5, false)
	p.begin()
	if r := p.interact("b", rightBox, SenseHover); !r.Hovered {
		t.Fatalf("release frees native hover")
	}
	r = p.interact("a", leftBox, SenseDrag)
	if r.Dragged || !r.DragReleased {
		t.Fatalf("release frame: %+v", r)
	}
	p.end()

	p.begin()
	if r := p.interact("a", leftBox, SenseDrag); r.DragReleased {
		t.Fatalf("release reported twice")
	}
}

func TestPointerPressAndReleaseWithoutMoving(t *testing.T) {
	in := installInput(t)
	var p pointer
	in.at(5, 5, false)
	idle(in, &p, func() { p.interact("a", leftBox, SenseDrag) })

	in.down = true
	p.begin()
	if r := p.interact("a", leftBox, SenseDrag); !r.Dragged {
		t.Fatalf("press frame must report the drag before any release: %+v", r)
	}
	p.end()

	in.down = false
	p.begin()
	r := p.interact("a", leftBox, SenseDrag)
	if !r.DragReleased || r.DragDelta != geom.Zero {
		t.Fatalf("release frame: %+v", r)
	}
	p.end()
}

func TestPointerPressOutsideTargetsCapturesNothing(t *testing.T) {
	in := installInput(t)
	var p pointer
	in.at(50, 50, false)
	idle(in, &p, func() { p.interact("a", leftBox, SenseDrag) })

	in.down = true
	p.begin()
	if r := p.interact("a", leftBox, SenseDrag); r.Dragged {
		t.Fatalf("press away from the widget dragged it: %+v", r)
	}
	p.end()
	if p.captured != "" {
		t.Fatalf("captured=%q", p.captured)
	}
}

func TestPointerTopmostWidgetWinsPress(t *testing.T) {
	in := installInput(t)
	var p pointer
	in.at(5, 5, false)
	idle(in, &p, func() {
		p.interact("below", leftBox, SenseDrag)
		p.interact("above", leftBox, SenseDrag)
	})

	in.down = true
	p.begin()
	below := p.interact("below", leftBox, SenseDrag)
	above := p.interact("above", leftBox, SenseDrag)
	p.end()
	if p.captured != "above" || below.Dragged || !above.Dragged {
		t.Fatalf("captured=%q below=%v above=%v", p.captured, below.Dragged, above.Dragged)
	}
}

func TestPointerClickOnlyOnPressEdge(t *testing.T) {
	in := installInput(t)
	var p pointer
	in.at(5, 5, true)
	p.begin()
	if r := p.interact("a", leftBox, SenseClick); !r.Clicked {
		t.Fatalf("press edge not reported as click")
	}
	p.end()
	if p.captured != "" {
		t.Fatalf("click-only widget captured the pointer")
	}
	p.begin()
	if r := p.interact("a", leftBox, SenseClick); r.Clicked {
		t.Fatalf("held button clicked again")
	}
}

func TestPointerDragTargetTakesPressFromClickWidget(t *testing.T) {
	in := installInput(t)
	var p pointer
	in.at(5, 5, false)
	idle(in, &p, func() { p.interact("drag", leftBox, SenseDrag) })

	in.down = true
	p.begin()
	if r := p.interact("click", leftBox, SenseClick); r.Clicked {
		t.Fatalf("click widget saw a press taken by a drag target")
	}
	p.end()
}
