package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/plugboard/core/cable"
	"github.com/ingyamilmolinar/plugboard/core/geom"
)

// Cable owns an In and an Out plug and draws the wire between them.
type Cable struct {
	id      cable.CableID
	in, out Plug
	origin  geom.Pos
	color   color.Color
}

func NewCable(id cable.CableID, in, out Plug) Cable {
	return Cable{id: id, in: in, out: out, color: colCable}
}

// Origin is where free plugs first appear: In at the origin, Out to its right.
func (c Cable) Origin(p geom.Pos) Cable { c.origin = p; return c }

func (c Cable) Color(col color.Color) Cable { c.color = col; return c }

type CableResponse struct {
	In, Out PlugResponse
}

// Plug returns the response of one end.
func (r CableResponse) Plug(t cable.PlugType) PlugResponse {
	if t == cable.In {
		return r.In
	}
	return r.Out
}

func (c Cable) Show(ctx *Context) CableResponse {
	inID := cable.NewPlugID(c.id, cable.In)
	outID := cable.NewPlugID(c.id, cable.Out)
	in := c.in.withID(inID).withDefaultPos(c.origin)
	out := c.out.withID(outID).withDefaultPos(c.origin.Add(geom.V(in.sizeOrDefault().X*4, 0)))

	// direction hints come from where the ends were last frame
	var toOut, toIn *geom.Vec
	if a, ok := ctx.State.PlugPos(inID); ok {
		if b, ok := ctx.State.PlugPos(outID); ok {
			v := b.Sub(a).Normalized()
			w := v.Scale(-1)
			toOut, toIn = &v, &w
		}
	}

	resp := CableResponse{
		In:  in.show(ctx, toOut),
		Out: out.show(ctx, toIn),
	}

	a, b, col := resp.In.Center, resp.Out.Center, c.color
	ctx.queue(layerCables, func(dst *ebiten.Image) { strokeLine(dst, a, b, 2, col) })
	return resp
}
