package models

import "fmt"

// EventKind identifies a simulation event variant.
type EventKind string

const (
	EventRiderRequest  EventKind = "RIDER_REQUEST"
	EventDriverRequest EventKind = "DRIVER_REQUEST"
	EventCancellation  EventKind = "CANCELLATION"
	EventPickup        EventKind = "PICKUP"
	EventDropoff       EventKind = "DROPOFF"
)

// Event is one timestamped simulation event. Which of Rider and Driver
// are set depends on the kind: requests and cancellations carry one of
// the two, pickups and dropoffs carry both. The pointers reference the
// canonical records owned by the dispatcher; events never carry copies.
type Event struct {
	Timestamp int       `json:"timestamp"`
	Kind      EventKind `json:"kind"`
	Rider     *Rider    `json:"rider,omitempty"`
	Driver    *Driver   `json:"driver,omitempty"`
}

// String returns a trace line in "<timestamp> -- <actor>: <action>" form.
func (e Event) String() string {
	switch e.Kind {
	case EventRiderRequest:
		return fmt.Sprintf("%d -- %s: Request a driver", e.Timestamp, e.Rider)
	case EventDriverRequest:
		return fmt.Sprintf("%d -- %s: Request a rider", e.Timestamp, e.Driver)
	case EventCancellation:
		return fmt.Sprintf("%d -- %s: Cancellation", e.Timestamp, e.Rider)
	case EventPickup:
		return fmt.Sprintf("%d -- %s: Pick up %s", e.Timestamp, e.Driver, e.Rider)
	case EventDropoff:
		return fmt.Sprintf("%d -- %s: Drop off %s", e.Timestamp, e.Driver, e.Rider)
	default:
		return fmt.Sprintf("%d -- unknown event %q", e.Timestamp, string(e.Kind))
	}
}
