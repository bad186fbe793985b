// Package cable keeps the cross-frame interaction state of plugs, ports and
// cables for an immediate-mode UI, and the protocol each port and plug render
// follows against it.
//
// Widgets are rebuilt every frame, so continuity (which plug is dragged, which
// port would receive it, whether a connection just happened) is reconstructed
// from per-frame input plus the small State kept here.
package cable

import (
	"fmt"

	"github.com/google/uuid"
)

// CableID identifies one cable for its whole lifetime.
type CableID string

// NewCableID returns a fresh random id.
func NewCableID() CableID { return CableID(uuid.NewString()) }

// PlugType tells the two ends of a cable apart.
type PlugType int

const (
	In PlugType = iota
	Out
)

func (t PlugType) String() string {
	switch t {
	case In:
		return "In"
	case Out:
		return "Out"
	default:
		return fmt.Sprintf("PlugType(%d)", int(t))
	}
}

// PlugID is one end of one cable. The zero value means "not assigned yet".
type PlugID struct {
	Cable CableID
	Type  PlugType
}

func NewPlugID(c CableID, t PlugType) PlugID { return PlugID{Cable: c, Type: t} }

// Assigned reports whether the owning cable has set this id.
func (id PlugID) Assigned() bool { return id.Cable != "" }

func (id PlugID) String() string { return fmt.Sprintf("%s/%s", id.Cable, id.Type) }

// PortID is supplied by the host and must be stable across frames.
type PortID string
