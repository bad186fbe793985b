package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/plugboard/core/cable"
	"github.com/ingyamilmolinar/plugboard/core/geom"
)

// Port is a connection target. Build one per frame and Show it.
type Port struct {
	id     cable.PortID
	rect   geom.Rect
	label  string
	visual PortVisual
}

func NewPort(id cable.PortID, rect geom.Rect) Port {
	return Port{id: id, rect: rect}
}

func (p Port) Label(s string) Port { p.label = s; return p }

func (p Port) Visual(v PortVisual) Port { p.visual = v; return p }

// PortResponse adds the protocol result to the pointer response.
type PortResponse struct {
	Response
	Outcome cable.PortOutcome
}

// Show runs the port protocol and queues the paint. Ports shown later in a
// frame win hover ties, and ports must be shown before the plugs that may be
// dropped on them for the drop to land in the same frame.
//
// The port paints as hovered when it is the frame's final drop target, which
// is only known once the frame has ended. Outcome.Hovered is the claim as it
// stood before this port resolved, for hosts that paint immediately.
func (p Port) Show(ctx *Context) PortResponse {
	resp := ctx.Interact("port/"+string(p.id), p.rect, SenseHover)
	out := ctx.State.RenderPort(cable.PortInput{ID: p.id, Rect: p.rect, HitTest: resp.Hovered})

	id, params, visual := p.id, PortParams{Rect: p.rect, Label: p.label}, p.visual
	ctx.queue(layerBackground, func(dst *ebiten.Image) {
		hovered, ok := ctx.HoveredPort()
		params.Hovered = ok && hovered == id
		visual.paint(dst, params)
	})
	return PortResponse{Response: resp, Outcome: out}
}
