package ui

import "image/color"

var (
	colBG    = color.RGBA{20, 20, 30, 255}
	colCable = color.RGBA{200, 200, 200, 255}
	// cables with a free end
	colCableLoose = color.RGBA{200, 160, 90, 255}
)

// widgetVisuals is the fill and stroke for one interaction state.
type widgetVisuals struct {
	Fill   color.Color
	Stroke color.Color
}

var (
	visInactive = widgetVisuals{Fill: color.RGBA{60, 60, 60, 255}, Stroke: color.RGBA{180, 180, 180, 255}}
	visHovered  = widgetVisuals{Fill: color.RGBA{70, 70, 110, 255}, Stroke: color.RGBA{240, 240, 240, 255}}
	visActive   = widgetVisuals{Fill: color.RGBA{40, 120, 200, 255}, Stroke: color.RGBA{255, 255, 255, 255}}
)

func visualsFor(hovered, dragged bool) widgetVisuals {
	if hovered {
		return visHovered
	}
	if dragged {
		return visActive
	}
	return visInactive
}
