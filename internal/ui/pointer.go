package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/plugboard/core/geom"
)

// Sense says which interactions a widget listens to.
type Sense int

const (
	SenseHover Sense = 1 << iota
	SenseClick
	SenseDrag
)

// Response is what one widget learned from the pointer this frame.
type Response struct {
	ID   string
	Rect geom.Rect
	// Hovered is the native hit-test. It is false for every widget except the
	// captured one while a drag is in progress.
	Hovered bool
	// Clicked is true on the frame the button goes down over the widget,
	// unless a drag target took the press.
	Clicked bool
	// Dragged is true from the press frame until the button goes up. The
	// press frame has a zero DragDelta.
	Dragged      bool
	DragReleased bool
	DragDelta    geom.Vec
}

// pointer is the single mouse pointer. It tracks press edges and which widget
// holds the drag; a widget keeps the capture until the button goes up.
//
// A press is resolved against the drag targets of the previous frame, the
// ones the user saw, so the pressed widget reports Dragged from the press
// frame on.
type pointer struct {
	pos, prev      geom.Pos
	down, prevDown bool

	captured string
	released string
	// grabbed is set on the press frame: the capture is new and has no delta.
	grabbed bool

	targets, lastTargets []dragTarget
}

type dragTarget struct {
	id   string
	rect geom.Rect
}

func (p *pointer) begin() {
	x, y := cursorPosition()
	p.prev, p.pos = p.pos, geom.Pt(float64(x), float64(y))
	p.prevDown, p.down = p.down, isMouseButtonPressed(ebiten.MouseButtonLeft)
	p.released, p.grabbed = "", false
	if !p.down && p.captured != "" {
		p.released, p.captured = p.captured, ""
	}
	if p.pressed() && p.captured == "" {
		p.captured = p.topmost(p.pos)
		p.grabbed = p.captured != ""
	}
}

// topmost is the last drag target shown under at; later widgets are drawn
// on top.
func (p *pointer) topmost(at geom.Pos) string {
	for i := len(p.lastTargets) - 1; i >= 0; i-- {
		if p.lastTargets[i].rect.Contains(at) {
			return p.lastTargets[i].id
		}
	}
	return ""
}

func (p *pointer) pressed() bool { return p.down && !p.prevDown }

func (p *pointer) delta() geom.Vec {
	if p.grabbed {
		return geom.Vec{}
	}
	return p.pos.Sub(p.prev)
}

func (p *pointer) interact(id string, r geom.Rect, sense Sense) Response {
	resp := Response{ID: id, Rect: r}
	over := r.Contains(p.pos)
	resp.Hovered = over && (p.captured == "" || p.captured == id)

	switch {
	case p.captured == id:
		resp.Dragged = true
		resp.DragDelta = p.delta()
	case p.released == id:
		resp.DragReleased = true
		resp.DragDelta = p.delta()
	}

	if sense&SenseDrag != 0 {
		p.targets = append(p.targets, dragTarget{id: id, rect: r})
	}
	if over && p.pressed() && p.captured == "" && sense&SenseClick != 0 {
		resp.Clicked = true
	}
	return resp
}

func (p *pointer) end() {
	p.lastTargets, p.targets = p.targets, p.lastTargets[:0]
}
