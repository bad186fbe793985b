package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ingyamilmolinar/plugboard/core/geom"
)

// The primitives below are variables so tests can capture draw calls without
// a graphics context.

var fillCircle = func(dst *ebiten.Image, c geom.Pos, r float64, col color.Color) {
	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(r), col, true)
}

var strokeCircle = func(dst *ebiten.Image, c geom.Pos, r, width float64, col color.Color) {
	vector.StrokeCircle(dst, float32(c.X), float32(c.Y), float32(r), float32(width), col, true)
}

var strokeLine = func(dst *ebiten.Image, a, b geom.Pos, width float64, col color.Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), col, true)
}

var drawLabel = func(dst *ebiten.Image, s string, x, y int) {
	ebitenutil.DebugPrintAt(dst, s, x, y)
}

// drawArrow draws a shaft from origin along v with a two-stroke head.
func drawArrow(dst *ebiten.Image, origin geom.Pos, v geom.Vec, width float64, col color.Color) {
	tip := origin.Add(v)
	strokeLine(dst, origin, tip, width, col)
	head := v.Scale(0.25)
	// rotate the reversed head by ±30°
	const cos30, sin30 = 0.8660254, 0.5
	l := geom.V(-head.X*cos30+head.Y*sin30, -head.X*sin30-head.Y*cos30)
	r := geom.V(-head.X*cos30-head.Y*sin30, head.X*sin30-head.Y*cos30)
	strokeLine(dst, tip, tip.Add(l), width, col)
	strokeLine(dst, tip, tip.Add(r), width, col)
}
