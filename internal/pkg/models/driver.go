package models

import (
	"fmt"
	"math"
)

// Driver is a driver known to the dispatcher.
//
// Destination is non-nil iff the driver is mid-drive (heading to a
// pickup) or mid-ride (carrying a rider). The idle flag is flipped by the
// dispatcher and by ride transitions, never directly by callers, so that
// assignment and the idle flip stay a single step.
type Driver struct {
	ID          string    `json:"id"`
	Location    Location  `json:"location"`
	Speed       int       `json:"speed"`
	IsIdle      bool      `json:"is_idle"`
	Destination *Location `json:"destination,omitempty"`
	RiderID     string    `json:"rider_id,omitempty"`
}

// NewDriver creates an idle driver at the given location.
// Speed must be positive.
func NewDriver(id string, location Location, speed int) *Driver {
	return &Driver{
		ID:       id,
		Location: location,
		Speed:    speed,
		IsIdle:   true,
	}
}

// TravelTime returns the number of ticks needed to reach destination.
// Distance over speed is rounded half-to-even so replays are stable
// across platforms.
func (d *Driver) TravelTime(destination Location) int {
	dist := ManhattanDistance(d.Location, destination)
	return int(math.RoundToEven(float64(dist) / float64(d.Speed)))
}

// StartDrive points the driver at destination and returns the travel
// time. The driver must not already have an active destination.
func (d *Driver) StartDrive(destination Location) (int, error) {
	if d.Destination != nil {
		return 0, fmt.Errorf("%w: driver %s already en route to %s", ErrInvalidTransition, d.ID, d.Destination)
	}
	travelTime := d.TravelTime(destination)
	dest := destination
	d.Destination = &dest
	d.IsIdle = false
	return travelTime, nil
}

// EndDrive arrives at the current destination. The idle flag is left
// untouched: the event applying the arrival decides whether the driver
// goes back into the idle pool.
func (d *Driver) EndDrive() error {
	if d.Destination == nil {
		return fmt.Errorf("%w: driver %s has no destination to arrive at", ErrInvalidTransition, d.ID)
	}
	d.Location = *d.Destination
	d.Destination = nil
	return nil
}

// StartRide picks up the rider and heads for their destination,
// returning the ride's travel time.
func (d *Driver) StartRide(rider *Rider) (int, error) {
	travelTime, err := d.StartDrive(rider.Destination)
	if err != nil {
		return 0, err
	}
	d.RiderID = rider.ID
	return travelTime, nil
}

// EndRide drops the rider off at their destination and returns the
// driver to the idle pool.
func (d *Driver) EndRide() error {
	if err := d.EndDrive(); err != nil {
		return err
	}
	d.RiderID = ""
	d.IsIdle = true
	return nil
}

// String returns a short rendering used in event traces.
func (d *Driver) String() string {
	return fmt.Sprintf("%s, Location: (%s), Speed: %d, is_idle: %t", d.ID, d.Location, d.Speed, d.IsIdle)
}
