package models

import "fmt"

// RiderStatus represents the current status of a rider.
type RiderStatus string

const (
	RiderStatusWaiting   RiderStatus = "WAITING"
	RiderStatusCancelled RiderStatus = "CANCELLED"
	RiderStatusSatisfied RiderStatus = "SATISFIED"
)

// Rider is a rider requesting a trip. Status transitions are one-way:
// WAITING may move to CANCELLED or SATISFIED, and neither terminal
// state can be left.
type Rider struct {
	ID          string      `json:"id"`
	Origin      Location    `json:"origin"`
	Destination Location    `json:"destination"`
	Patience    int         `json:"patience"`
	Status      RiderStatus `json:"status"`
}

// NewRider creates a rider in the WAITING state.
func NewRider(id string, origin, destination Location, patience int) *Rider {
	return &Rider{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Patience:    patience,
		Status:      RiderStatusWaiting,
	}
}

// Cancel transitions the rider to CANCELLED. It is an idempotent no-op
// once the rider is in a terminal state, so a cancellation racing with a
// pickup at the same tick can never override a completed pickup.
func (r *Rider) Cancel() {
	if r.Status != RiderStatusWaiting {
		return
	}
	r.Status = RiderStatusCancelled
}

// Satisfy transitions the rider from WAITING to SATISFIED. Calling it
// from any other state is a sequencing bug in the caller.
func (r *Rider) Satisfy() error {
	if r.Status != RiderStatusWaiting {
		return fmt.Errorf("%w: satisfy rider %s in status %s", ErrInvalidTransition, r.ID, r.Status)
	}
	r.Status = RiderStatusSatisfied
	return nil
}

// String returns a short rendering used in event traces.
func (r *Rider) String() string {
	return fmt.Sprintf("%s, O: (%s), D: (%s), %d, %s", r.ID, r.Origin, r.Destination, r.Patience, r.Status)
}
