// Package geom holds the float screen-space types shared by the cable state
// and the ebiten widgets.
package geom

import "math"

// Pos is a point in screen space.
type Pos struct{ X, Y float64 }

// Vec is a displacement or a size.
type Vec struct{ X, Y float64 }

// Rect is an axis-aligned rectangle; Max is exclusive for hit-testing.
type Rect struct{ Min, Max Pos }

func Pt(x, y float64) Pos { return Pos{x, y} }
func V(x, y float64) Vec  { return Vec{x, y} }

// Zero is the empty size.
var Zero = Vec{}

func (p Pos) Add(v Vec) Pos       { return Pos{p.X + v.X, p.Y + v.Y} }
func (p Pos) Sub(q Pos) Vec       { return Vec{p.X - q.X, p.Y - q.Y} }
func (v Vec) Add(w Vec) Vec       { return Vec{v.X + w.X, v.Y + w.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }

// MinElem returns the smaller of the two components.
func (v Vec) MinElem() float64 { return math.Min(v.X, v.Y) }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns the unit vector, or the zero vector for zero length.
func (v Vec) Normalized() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// DistanceSq is the squared distance between two points.
func (p Pos) DistanceSq(q Pos) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// RectFromPosSize builds a rect with top-left p and size s.
func RectFromPosSize(p Pos, s Vec) Rect { return Rect{Min: p, Max: p.Add(s)} }

// RectFromCenterSize builds a rect centred on c.
func RectFromCenterSize(c Pos, s Vec) Rect {
	return RectFromPosSize(c.Add(s.Scale(-0.5)), s)
}

func (r Rect) Size() Vec       { return r.Max.Sub(r.Min) }
func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }
func (r Rect) Center() Pos     { return r.Min.Add(r.Size().Scale(0.5)) }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}
