package cable

import (
	"github.com/ingyamilmolinar/plugboard/core/geom"
	game_log "github.com/ingyamilmolinar/plugboard/internal/log"
)

// DraggedPlug is the centre and size of the plug currently being dragged.
type DraggedPlug struct {
	Pos  geom.Pos
	Size geom.Vec
}

// Store is the part of the state that survives frames: where every port and
// plug was last rendered, and the drag slot.
type Store struct {
	portPos map[PortID]geom.Pos
	plugPos map[PlugID]geom.Pos
	dragged *DraggedPlug
}

func newStore() Store {
	return Store{
		portPos: map[PortID]geom.Pos{},
		plugPos: map[PlugID]geom.Pos{},
	}
}

// Frame is the per-frame scratch. BeginFrame resets it.
type Frame struct {
	index int64

	hovered    PortID
	hoveredSet bool

	generation map[PortID]int
	events     map[CableID]Event
}

func newFrame() Frame {
	return Frame{
		generation: map[PortID]int{},
		events:     map[CableID]Event{},
	}
}

// Options tunes behaviour that is deliberately off by default.
type Options struct {
	// ForgetDraggedPlugOnRelease empties the drag slot when the dragged plug
	// is released. Without it the slot keeps the last dragged plug until the
	// next drag overwrites it.
	ForgetDraggedPlugOnRelease bool
}

// State is one UI context's interaction state. It is not safe for concurrent
// use; a single frame loop owns it and passes it to every render call.
type State struct {
	Store
	Frame

	opts   Options
	logger *game_log.Logger
}

// New creates the state for one UI context.
func New(logger *game_log.Logger, opts Options) *State {
	if logger == nil {
		logger = game_log.Nop()
	}
	return &State{
		Store:  newStore(),
		Frame:  newFrame(),
		opts:   opts,
		logger: logger,
	}
}

// BeginFrame must run before any port or plug of the frame renders. It
// resets the hover claim, generations and undrained events.
func (s *State) BeginFrame() {
	if n := len(s.events); n > 0 {
		s.logger.Warnf("[CABLE] frame %d: dropping %d undrained event(s)", s.index, n)
	}
	s.hovered, s.hoveredSet = "", false
	clear(s.generation)
	clear(s.events)
	s.index++
}

// FrameIndex counts BeginFrame calls.
func (s *State) FrameIndex() int64 { return s.index }

/* ───────────── position registry ───────────── */

func (s *State) UpdatePortPos(id PortID, p geom.Pos) { s.portPos[id] = p }

func (s *State) PortPos(id PortID) (geom.Pos, bool) {
	p, ok := s.portPos[id]
	return p, ok
}

func (s *State) UpdatePlugPos(id PlugID, p geom.Pos) { s.plugPos[id] = p }

func (s *State) PlugPos(id PlugID) (geom.Pos, bool) {
	p, ok := s.plugPos[id]
	return p, ok
}

/* ───────────── drag tracker ───────────── */

// UpdateDraggedPlug replaces the drag slot. Only the plug being dragged calls it.
func (s *State) UpdateDraggedPlug(d DraggedPlug) { s.dragged = &d }

// DraggedPlug returns the slot. A filled slot does not mean a drag is in
// progress right now; pair it with the input layer's drag signal.
func (s *State) DraggedPlug() (DraggedPlug, bool) {
	if s.dragged == nil {
		return DraggedPlug{}, false
	}
	return *s.dragged, true
}

func (s *State) forgetDraggedPlug() { s.dragged = nil }

/* ───────────── hover ───────────── */

// UpdateHoveredPortID claims hover for this frame. Later calls win, so the
// port rendered last takes priority.
func (s *State) UpdateHoveredPortID(id PortID) {
	s.hovered, s.hoveredSet = id, true
}

// HoveredPortID returns the latest claim of this frame. Plugs released
// before the hovered port rendered do not see it.
func (s *State) HoveredPortID() (PortID, bool) {
	return s.hovered, s.hoveredSet
}

/* ───────────── generation ───────────── */

// AdvanceGenerationIfTwice counts renders of id in the current frame and
// returns the new count. A count above one means the port was rendered more
// than once; positions stay consistent because the later render wins.
func (s *State) AdvanceGenerationIfTwice(id PortID) int {
	s.generation[id]++
	g := s.generation[id]
	if g > 1 {
		s.logger.Warnf("[PORT] %q rendered %d times in frame %d", id, g, s.index)
	}
	return g
}

func (s *State) Generation(id PortID) int { return s.generation[id] }

/* ───────────── events ───────────── */

// EmitEvent records ev for cable c, replacing an earlier event of this frame.
func (s *State) EmitEvent(c CableID, ev Event) {
	s.events[c] = ev
	s.logger.Debugf("[CABLE] %s: %s", c, ev)
}

// Events returns a copy of the pending events without clearing them.
func (s *State) Events() map[CableID]Event {
	out := make(map[CableID]Event, len(s.events))
	for k, v := range s.events {
		out[k] = v
	}
	return out
}

// DrainEvents returns the pending events and clears them. The host calls it
// once per frame after all plugs rendered.
func (s *State) DrainEvents() map[CableID]Event {
	out := s.events
	s.events = make(map[CableID]Event, len(out))
	return out
}
