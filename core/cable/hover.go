package cable

import (
	"math"

	"github.com/ingyamilmolinar/plugboard/core/geom"
)

// FarDraggedPlug stands in for "nothing is dragged": it sits at infinity and
// has no size, so the proximity test below never passes against it.
var FarDraggedPlug = DraggedPlug{
	Pos:  geom.Pt(math.Inf(1), math.Inf(1)),
	Size: geom.Zero,
}

// PortHovered decides whether a port is the drop target. The host hit-test is
// not enough: while a plug is dragged the pointer is captured by the plug and
// never reports hover on the port, so a plug whose circle touches the port's
// circle counts as well. Each shape's radius is half its smaller side.
func PortHovered(rect geom.Rect, hitTest bool, dragged DraggedPlug) bool {
	if hitTest {
		return true
	}
	reach := (rect.Size().MinElem() + dragged.Size.MinElem()) / 2
	return rect.Center().DistanceSq(dragged.Pos) < reach*reach
}
