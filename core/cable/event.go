package cable

import "fmt"

// EventKind tags an Event.
type EventKind int

const (
	EventConnected EventKind = iota + 1
)

// Event is emitted by a plug render. Connected is currently the only kind:
// the plug of PlugType was dropped on PortID.
type Event struct {
	Kind     EventKind
	PlugType PlugType
	PortID   PortID
}

// Connected builds a Connected event.
func Connected(t PlugType, port PortID) Event {
	return Event{Kind: EventConnected, PlugType: t, PortID: port}
}

func (e Event) String() string {
	switch e.Kind {
	case EventConnected:
		return fmt.Sprintf("Connected{%s, %s}", e.PlugType, e.PortID)
	default:
		return fmt.Sprintf("Event(%d)", int(e.Kind))
	}
}
