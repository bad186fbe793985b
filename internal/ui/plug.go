package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/plugboard/core/cable"
	"github.com/ingyamilmolinar/plugboard/core/geom"
)

// DefaultPlugSize is used when a plug is not given a size.
var DefaultPlugSize = geom.V(16, 16)

// Plug is one end of a cable. It is shown by its Cable, which assigns the
// id and the default position.
type Plug struct {
	plugTo     cable.PortID
	id         cable.PlugID
	defaultPos *geom.Pos
	size       geom.Vec
	visual     PlugVisual
}

// NewPlug is a free plug.
func NewPlug() Plug { return Plug{} }

// PlugTo is a plug attached to port.
func PlugTo(port cable.PortID) Plug { return Plug{plugTo: port} }

func (p Plug) Size(s geom.Vec) Plug { p.size = s; return p }

func (p Plug) Visual(v PlugVisual) Plug { p.visual = v; return p }

func (p Plug) withID(id cable.PlugID) Plug { p.id = id; return p }

func (p Plug) withDefaultPos(pos geom.Pos) Plug { p.defaultPos = &pos; return p }

func (p Plug) sizeOrDefault() geom.Vec {
	if p.size == geom.Zero {
		return DefaultPlugSize
	}
	return p.size
}

// WidgetID is the pointer id of the plug with the given PlugID.
func WidgetID(id cable.PlugID) string { return "plug/" + id.String() }

// PlugResponse adds the protocol result to the pointer response.
type PlugResponse struct {
	Response
	cable.PlugOutcome
	PlugID cable.PlugID
}

func (p Plug) show(ctx *Context, vector *geom.Vec) PlugResponse {
	if !p.id.Assigned() {
		panic("ui: plug shown outside of a cable")
	}
	size := p.sizeOrDefault()
	in := cable.PlugInput{ID: p.id, PlugTo: p.plugTo, DefaultPos: p.defaultPos, Size: size}

	start, ok := ctx.State.ResolvePlugPos(in)
	if !ok {
		panic("ui: free plug " + p.id.String() + " has no default position")
	}
	sense := SenseDrag
	if p.plugTo != "" {
		sense = SenseHover | SenseClick
	}
	resp := ctx.Interact(WidgetID(p.id), geom.RectFromPosSize(start, size), sense)

	in.Drag = cable.DragInput{Dragged: resp.Dragged, Released: resp.DragReleased, Delta: resp.DragDelta}
	out := ctx.State.RenderPlug(in)

	params := PlugParams{
		Rect:    geom.RectFromPosSize(out.Pos, size),
		Center:  out.Center,
		Vector:  vector,
		Active:  !out.Anchored,
		Hovered: resp.Hovered && !resp.Dragged,
		Dragged: out.Dragging,
	}
	visual := p.visual
	ctx.queue(layerForeground, func(dst *ebiten.Image) { visual.paint(dst, params) })
	return PlugResponse{Response: resp, PlugOutcome: out, PlugID: p.id}
}
