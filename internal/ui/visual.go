package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/plugboard/core/geom"
)

// PortParams is what a port visual gets to paint with.
type PortParams struct {
	Rect    geom.Rect
	Label   string
	Hovered bool
}

// PlugParams is what a plug visual gets to paint with.
type PlugParams struct {
	Rect   geom.Rect
	Center geom.Pos
	// Vector points towards the other end of the cable, unit length. Nil
	// until both ends have been rendered once.
	Vector  *geom.Vec
	Active  bool // free to drag
	Hovered bool
	Dragged bool
}

// PortVisual is either the default look or a custom paint callback. The zero
// value is the default.
type PortVisual struct {
	custom func(dst *ebiten.Image, p PortParams)
}

func DefaultPortVisual() PortVisual { return PortVisual{} }

func CustomPortVisual(fn func(dst *ebiten.Image, p PortParams)) PortVisual {
	return PortVisual{custom: fn}
}

func (v PortVisual) paint(dst *ebiten.Image, p PortParams) {
	if v.custom != nil {
		v.custom(dst, p)
		return
	}
	vis := visualsFor(p.Hovered, false)
	c := p.Rect.Center()
	r := p.Rect.Height() / 2
	fillCircle(dst, c, r, vis.Fill)
	strokeCircle(dst, c, r, 1, vis.Stroke)
	if p.Label != "" {
		drawLabel(dst, p.Label, int(p.Rect.Min.X), int(p.Rect.Max.Y)+2)
	}
}

// PlugVisual is either the default look or a custom paint callback. The zero
// value is the default.
type PlugVisual struct {
	custom func(dst *ebiten.Image, p PlugParams)
}

func DefaultPlugVisual() PlugVisual { return PlugVisual{} }

func CustomPlugVisual(fn func(dst *ebiten.Image, p PlugParams)) PlugVisual {
	return PlugVisual{custom: fn}
}

func (v PlugVisual) paint(dst *ebiten.Image, p PlugParams) {
	if v.custom != nil {
		v.custom(dst, p)
		return
	}
	vis := visualsFor(p.Hovered, p.Dragged)
	half := p.Rect.Width() / 2
	if !p.Active {
		fillCircle(dst, p.Center, half*0.4, vis.Stroke)
		return
	}
	if p.Dragged && p.Vector != nil {
		drawArrow(dst, p.Center, p.Vector.Scale(half*1.5), 2, vis.Stroke)
	}
	fillCircle(dst, p.Center, half, vis.Fill)
	strokeCircle(dst, p.Center, half, 1, vis.Stroke)
	strokeCircle(dst, p.Center, half/2, 1, vis.Stroke)
}
