package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ingyamilmolinar/plugboard/core/cable"
	"github.com/ingyamilmolinar/plugboard/core/geom"
	game_log "github.com/ingyamilmolinar/plugboard/internal/log"
)

// Port is a connection target owned by the host.
type Port struct {
	ID    cable.PortID
	Label string
	Rect  geom.Rect
}

// Cable records which port, if any, each end is plugged into.
type Cable struct {
	ID     cable.CableID
	In     cable.PortID
	Out    cable.PortID
	Origin geom.Pos // where free plugs first appear
}

// End returns the port the given end is plugged into.
func (c *Cable) End(t cable.PlugType) cable.PortID {
	if t == cable.In {
		return c.In
	}
	return c.Out
}

func (c *Cable) setEnd(t cable.PlugType, p cable.PortID) {
	if t == cable.In {
		c.In = p
	} else {
		c.Out = p
	}
}

// Graph is the host's connection ownership model. Which port each plug is
// attached to lives here; the cable state layer only reports drops.
type Graph struct {
	Ports  map[cable.PortID]Port
	Cables map[cable.CableID]*Cable
	order  []cable.PortID
	logger *game_log.Logger
}

func NewGraph(logger *game_log.Logger) *Graph {
	return &Graph{
		Ports:  map[cable.PortID]Port{},
		Cables: map[cable.CableID]*Cable{},
		logger: logger,
	}
}

func (g *Graph) AddPort(p Port) error {
	if p.ID == "" {
		return errors.New("port with empty id")
	}
	if _, ok := g.Ports[p.ID]; ok {
		return fmt.Errorf("duplicate port %q", p.ID)
	}
	g.Ports[p.ID] = p
	g.order = append(g.order, p.ID)
	g.logger.Debugf("[GRAPH] Added port %q at %v", p.ID, p.Rect)
	return nil
}

// PortsInOrder returns ports in insertion order, which is also render order.
func (g *Graph) PortsInOrder() []Port {
	out := make([]Port, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.Ports[id])
	}
	return out
}

// RemovePort drops the port and unplugs every end attached to it.
func (g *Graph) RemovePort(id cable.PortID) {
	if _, ok := g.Ports[id]; !ok {
		return
	}
	delete(g.Ports, id)
	for i, v := range g.order {
		if v == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	for _, c := range g.Cables {
		for _, t := range []cable.PlugType{cable.In, cable.Out} {
			if c.End(t) == id {
				c.setEnd(t, "")
			}
		}
	}
	g.logger.Debugf("[GRAPH] Removed port %q", id)
}

// AddCable registers c; ends that name unknown ports are an error.
func (g *Graph) AddCable(c Cable) (*Cable, error) {
	if c.ID == "" {
		c.ID = cable.NewCableID()
	}
	if _, ok := g.Cables[c.ID]; ok {
		return nil, fmt.Errorf("duplicate cable %q", c.ID)
	}
	for _, p := range []cable.PortID{c.In, c.Out} {
		if _, ok := g.Ports[p]; p != "" && !ok {
			return nil, fmt.Errorf("cable %q: unknown port %q", c.ID, p)
		}
	}
	cc := c
	g.Cables[c.ID] = &cc
	g.logger.Debugf("[GRAPH] Added cable %s in=%q out=%q", c.ID, c.In, c.Out)
	return &cc, nil
}

// CablesInOrder returns cables sorted by id so rendering is stable.
func (g *Graph) CablesInOrder() []*Cable {
	out := make([]*Cable, 0, len(g.Cables))
	for _, c := range g.Cables {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Detach unplugs one end. The next render shows the plug free.
func (g *Graph) Detach(id cable.CableID, t cable.PlugType) {
	c, ok := g.Cables[id]
	if !ok {
		return
	}
	g.logger.Debugf("[GRAPH] Detached %s end of %s from %q", t, id, c.End(t))
	c.setEnd(t, "")
}

// Apply applies a frame's drained events and returns how many changed the graph.
// Events for unknown cables or ports are ignored.
func (g *Graph) Apply(events map[cable.CableID]cable.Event) int {
	changed := 0
	for id, ev := range events {
		c, ok := g.Cables[id]
		if !ok {
			g.logger.Warnf("[GRAPH] Event %s for unknown cable %s", ev, id)
			continue
		}
		switch ev.Kind {
		case cable.EventConnected:
			if _, ok := g.Ports[ev.PortID]; !ok {
				g.logger.Warnf("[GRAPH] Cable %s connected to unknown port %q", id, ev.PortID)
				continue
			}
			if c.End(ev.PlugType) == ev.PortID {
				continue
			}
			c.setEnd(ev.PlugType, ev.PortID)
			changed++
			g.logger.Infof("[GRAPH] Cable %s %s end -> %q", id, ev.PlugType, ev.PortID)
		}
	}
	return changed
}

// CablesAt lists cables with at least one end on port id.
func (g *Graph) CablesAt(id cable.PortID) []*Cable {
	var out []*Cable
	for _, c := range g.CablesInOrder() {
		if c.In == id || c.Out == id {
			out = append(out, c)
		}
	}
	return out
}
