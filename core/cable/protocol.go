package cable

import (
	"github.com/ingyamilmolinar/plugboard/core/geom"
)

// PortInput is what the host knows about a port in this frame.
type PortInput struct {
	ID   PortID
	Rect geom.Rect
	// HitTest is the host's own hover test of the pointer against Rect.
	HitTest bool
}

// PortOutcome tells the port widget how to paint itself.
type PortOutcome struct {
	// Hovered is the hover state to paint, read before this port resolved.
	Hovered bool
	// Claimed is true when this render took the hover claim.
	Claimed    bool
	Generation int
}

// RenderPort runs the port half of the protocol.
func (s *State) RenderPort(in PortInput) PortOutcome {
	cur, ok := s.HoveredPortID()
	out := PortOutcome{Hovered: ok && cur == in.ID}

	out.Generation = s.AdvanceGenerationIfTwice(in.ID)
	s.UpdatePortPos(in.ID, in.Rect.Min)

	dragged, ok := s.DraggedPlug()
	if !ok {
		dragged = FarDraggedPlug
	}
	if PortHovered(in.Rect, in.HitTest, dragged) {
		s.UpdateHoveredPortID(in.ID)
		out.Claimed = true
	}
	return out
}

// DragInput is the input layer's view of the plug's drag gesture this frame.
type DragInput struct {
	// Dragged is true while the gesture is in progress.
	Dragged bool
	// Released is true on the frame the gesture ends.
	Released bool
	Delta    geom.Vec
}

// PlugInput is what the host knows about a plug in this frame.
type PlugInput struct {
	// ID must be assigned by the owning cable before the first render.
	ID PlugID
	// PlugTo anchors the plug to a port. Empty means the plug is free.
	PlugTo PortID
	// DefaultPos is the top-left used when a free plug was never rendered.
	DefaultPos *geom.Pos
	Size       geom.Vec
	Drag       DragInput
}

// PlugOutcome is where the plug ended up and what it did.
type PlugOutcome struct {
	// Pos is the top-left after the drag delta.
	Pos      geom.Pos
	Center   geom.Pos
	Anchored bool
	Dragging bool
	// Event is set when this render emitted an event.
	Event *Event
}

// ResolvePlugPos returns the top-left a plug starts the frame at, before any
// drag delta. An anchored plug sits on its port; if the port is not on screen
// it keeps its last position, and falls back to the origin if it has none. A
// free plug takes its last position, else DefaultPos. ok is false only for a
// free plug with neither.
func (s *State) ResolvePlugPos(in PlugInput) (pos geom.Pos, ok bool) {
	if in.PlugTo != "" {
		if p, ok := s.PortPos(in.PlugTo); ok {
			return p, true
		}
		if p, ok := s.PlugPos(in.ID); ok {
			return p, true
		}
		return geom.Pos{}, true
	}
	if p, ok := s.PlugPos(in.ID); ok {
		return p, true
	}
	if in.DefaultPos != nil {
		return *in.DefaultPos, true
	}
	return geom.Pos{}, false
}

// RenderPlug runs the plug half of the protocol. It panics if the plug id was
// never assigned, or if a free plug has neither a remembered nor a default
// position; both are caller bugs.
func (s *State) RenderPlug(in PlugInput) PlugOutcome {
	if !in.ID.Assigned() {
		panic("cable: plug rendered before its cable assigned an id")
	}
	pos, ok := s.ResolvePlugPos(in)
	if !ok {
		panic("cable: free plug " + in.ID.String() + " has no default position")
	}

	var out PlugOutcome
	if in.PlugTo != "" {
		out.Anchored = true
		out.Pos = pos
		out.Center = pos.Add(in.Size.Scale(0.5))
		s.UpdatePlugPos(in.ID, pos)
		return out
	}

	pos = pos.Add(in.Drag.Delta)
	out.Pos = pos
	out.Center = pos.Add(in.Size.Scale(0.5))

	if in.Drag.Dragged {
		out.Dragging = true
		s.UpdateDraggedPlug(DraggedPlug{Pos: out.Center, Size: in.Size})
	}
	if in.Drag.Released {
		if port, ok := s.HoveredPortID(); ok {
			ev := Connected(in.ID.Type, port)
			s.EmitEvent(in.ID.Cable, ev)
			out.Event = &ev
		}
		if s.opts.ForgetDraggedPlugOnRelease {
			s.forgetDraggedPlug()
		}
	}

	s.UpdatePlugPos(in.ID, pos)
	return out
}
