package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/plugboard/core/cable"
	"github.com/ingyamilmolinar/plugboard/core/geom"
	"github.com/ingyamilmolinar/plugboard/core/model"
	"github.com/ingyamilmolinar/plugboard/internal/config"
	game_log "github.com/ingyamilmolinar/plugboard/internal/log"
)

// Board is the demo host: it shows every port and cable each frame and keeps
// the connection model in sync with the drops the cable layer reports.
type Board struct {
	ctx    *Context
	graph  *model.Graph
	logger *game_log.Logger

	plugSize   geom.Vec
	winW, winH int
	frame      int64
	status     string
}

func NewBoard(cfg *config.Config, logger *game_log.Logger) (*Board, error) {
	if logger == nil {
		logger = game_log.Nop()
	}
	b := &Board{
		ctx:      NewContext(logger, cable.Options{ForgetDraggedPlugOnRelease: cfg.ForgetDraggedPlug}),
		graph:    model.NewGraph(logger.With("graph")),
		logger:   logger.With("board"),
		plugSize: geom.V(cfg.PlugSize, cfg.PlugSize),
		winW:     cfg.Window.Width,
		winH:     cfg.Window.Height,
	}
	portSize := geom.V(cfg.PortSize, cfg.PortSize)
	for _, p := range cfg.Ports {
		err := b.graph.AddPort(model.Port{
			ID:    cable.PortID(p.ID),
			Label: p.Label,
			Rect:  geom.RectFromCenterSize(geom.Pt(p.X, p.Y), portSize),
		})
		if err != nil {
			return nil, fmt.Errorf("board: %w", err)
		}
	}
	for _, c := range cfg.Cables {
		_, err := b.graph.AddCable(model.Cable{
			ID:     cable.CableID(c.ID),
			In:     cable.PortID(c.In),
			Out:    cable.PortID(c.Out),
			Origin: geom.Pt(c.X, c.Y),
		})
		if err != nil {
			return nil, fmt.Errorf("board: %w", err)
		}
	}
	b.logger.Infof("[BOARD] %d port(s), %d cable(s)", len(b.graph.Ports), len(b.graph.Cables))
	return b, nil
}

// Graph exposes the connection model.
func (b *Board) Graph() *model.Graph { return b.graph }

func (b *Board) plugFor(c *model.Cable, t cable.PlugType) Plug {
	p := NewPlug()
	if port := c.End(t); port != "" {
		p = PlugTo(port)
	}
	return p.Size(b.plugSize)
}

func (b *Board) Update() error {
	b.frame++
	b.ctx.Begin()

	// ports first so a drop lands in the frame it happens
	var pointed cable.PortID
	for _, p := range b.graph.PortsInOrder() {
		if NewPort(p.ID, p.Rect).Label(p.Label).Show(b.ctx).Hovered {
			pointed = p.ID
		}
	}
	for _, c := range b.graph.CablesInOrder() {
		resp := NewCable(c.ID, b.plugFor(c, cable.In), b.plugFor(c, cable.Out)).
			Origin(c.Origin).
			Color(cableColor(c)).
			Show(b.ctx)
		b.unplugClicked(c, resp)
	}
	if isKeyJustPressed(ebiten.KeyN) {
		b.spawnCable(b.ctx.Pointer())
	}
	if pointed != "" && isKeyJustPressed(ebiten.KeyDelete) {
		b.removePort(pointed)
	}

	events := b.ctx.End()
	if n := b.graph.Apply(events); n > 0 {
		b.status = fmt.Sprintf("frame %d: %d connection(s) changed", b.frame, n)
		b.logger.Debugf("[BOARD] %s", b.status)
	}
	return nil
}

// unplugClicked frees a plugged end that was pressed and keeps it under the
// pointer so the same gesture carries on as a drag.
func (b *Board) unplugClicked(c *model.Cable, resp CableResponse) {
	for _, t := range []cable.PlugType{cable.In, cable.Out} {
		r := resp.Plug(t)
		if !r.Anchored || !r.Clicked || b.ctx.Dragging() {
			continue
		}
		b.graph.Detach(c.ID, t)
		b.ctx.Grab(r)
		b.status = fmt.Sprintf("unplugged %s", r.PlugID)
		return
	}
}

func (b *Board) spawnCable(at geom.Pos) {
	c, err := b.graph.AddCable(model.Cable{Origin: at})
	if err != nil {
		b.logger.Errorf("[BOARD] spawn cable: %v", err)
		return
	}
	b.status = fmt.Sprintf("new cable %s", c.ID)
	b.logger.Infof("[BOARD] Spawned cable %s at %v", c.ID, at)
}

// removePort deletes a port; cables plugged into it come loose where they are.
func (b *Board) removePort(id cable.PortID) {
	loose := b.graph.CablesAt(id)
	b.graph.RemovePort(id)
	b.status = fmt.Sprintf("removed %s, %d cable(s) unplugged", id, len(loose))
	b.logger.Infof("[BOARD] Removed port %q (%d cable(s))", id, len(loose))
}

func cableColor(c *model.Cable) color.Color {
	if c.In != "" && c.Out != "" {
		return colCable
	}
	return colCableLoose
}

func (b *Board) Draw(screen *ebiten.Image) {
	screen.Fill(colBG)
	b.ctx.Draw(screen)
	drawLabel(screen, "drag plugs onto ports, N: new cable, Del: remove port", 8, 8)
	if b.status != "" {
		drawLabel(screen, b.status, 8, b.winH-20)
	}
}

func (b *Board) Layout(w, h int) (int, int) {
	b.winW, b.winH = w, h
	return w, h
}
