package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/plugboard/core/cable"
	"github.com/ingyamilmolinar/plugboard/core/geom"
	game_log "github.com/ingyamilmolinar/plugboard/internal/log"
)

type layer int

const (
	layerBackground layer = iota // ports
	layerCables
	layerForeground // plugs
	layerCount
)

// Context is the immediate-mode frame for one board. Widgets are shown
// between Begin and End inside ebiten's Update; Draw replays what they
// queued. The cable state lives here and is handed to every widget.
type Context struct {
	State  *cable.State
	logger *game_log.Logger

	ptr    pointer
	paint  [layerCount][]func(dst *ebiten.Image)
	inside bool

	// hovered is the frame's final hover claim, for painting.
	hovered    cable.PortID
	hoveredSet bool
}

func NewContext(logger *game_log.Logger, opts cable.Options) *Context {
	if logger == nil {
		logger = game_log.Nop()
	}
	return &Context{
		State:  cable.New(logger.With("cable"), opts),
		logger: logger,
	}
}

// Begin starts a frame: reads the pointer and resets frame scratch.
func (c *Context) Begin() {
	if c.inside {
		panic("ui: Begin called twice without End")
	}
	c.inside = true
	c.State.BeginFrame()
	c.ptr.begin()
	for i := range c.paint {
		c.paint[i] = c.paint[i][:0]
	}
}

// End finishes the frame and hands over its events. The caller owns them;
// they are gone from the state afterwards.
func (c *Context) End() map[cable.CableID]cable.Event {
	if !c.inside {
		panic("ui: End called without Begin")
	}
	c.inside = false
	c.ptr.end()
	c.hovered, c.hoveredSet = c.State.HoveredPortID()
	events := c.State.DrainEvents()
	if len(events) > 0 {
		c.logger.Debugf("[UI] frame %d: %d event(s)", c.State.FrameIndex(), len(events))
	}
	return events
}

// Draw paints the last completed frame, back to front.
func (c *Context) Draw(dst *ebiten.Image) {
	for _, fns := range c.paint {
		for _, fn := range fns {
			fn(dst)
		}
	}
}

// Interact hit-tests one widget against the pointer.
func (c *Context) Interact(id string, r geom.Rect, sense Sense) Response {
	return c.ptr.interact(id, r, sense)
}

// Capture hands the pointer to widget id until the button is released.
func (c *Context) Capture(id string) {
	c.ptr.captured = id
	c.ptr.grabbed = false
}

// Grab hands the pointer to a plug shown this frame and records it as the
// dragged plug where it sits, so ports resolve against it even if the button
// goes up before it moves. Hosts call it after detaching an anchored plug.
func (c *Context) Grab(r PlugResponse) {
	c.Capture(WidgetID(r.PlugID))
	c.State.UpdateDraggedPlug(cable.DraggedPlug{Pos: r.Center, Size: r.Rect.Size()})
}

// HoveredPort is the port that ended the last frame as the drop target.
func (c *Context) HoveredPort() (cable.PortID, bool) { return c.hovered, c.hoveredSet }

// Dragging reports whether some widget holds the pointer.
func (c *Context) Dragging() bool { return c.ptr.captured != "" }

// Pointer is the cursor position read at Begin.
func (c *Context) Pointer() geom.Pos { return c.ptr.pos }

func (c *Context) queue(l layer, fn func(dst *ebiten.Image)) {
	c.paint[l] = append(c.paint[l], fn)
}
