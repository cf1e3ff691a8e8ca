// Package dispatch matches idle drivers with waiting riders.
//
// The dispatcher owns the canonical driver records (the fleet) and the
// wait-list of riders that requested a trip before a driver was free.
// Matching is deterministic: the idle driver with the shortest travel
// time to the rider wins, with fleet-registration order breaking ties,
// and riders come off the wait-list strictly in arrival order.
package dispatch

import (
	"github.com/piresc/dispatchsim/internal/pkg/logger"
	"github.com/piresc/dispatchsim/internal/pkg/models"
	"github.com/piresc/dispatchsim/internal/pkg/queue"
)

// Dispatcher fulfills requests from riders and drivers.
type Dispatcher struct {
	// fleet holds every driver ever registered, in registration order.
	// Drivers are never removed; busy ones are skipped during matching.
	fleet    []*models.Driver
	byID     map[string]*models.Driver
	waitlist *queue.OrderedQueue[*waitingRider]
}

// waitingRider pins the tick a rider joined the wait-list, which is the
// priority key that keeps matching FIFO by request time.
type waitingRider struct {
	rider       *models.Rider
	requestedAt int
}

// NewDispatcher creates a dispatcher with an empty fleet and wait-list.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		byID: make(map[string]*models.Driver),
		waitlist: queue.New(func(w *waitingRider) int {
			return w.requestedAt
		}),
	}
}

// RequestDriver returns a driver for the rider, or nil if none is idle.
// The chosen driver is flagged busy before this returns, so two riders
// processed in the same tick can never be handed the same driver. When
// no driver is idle the rider joins the wait-list.
func (d *Dispatcher) RequestDriver(rider *models.Rider, timestamp int) *models.Driver {
	var best *models.Driver
	bestTime := 0
	for _, drv := range d.fleet {
		if !drv.IsIdle {
			continue
		}
		t := drv.TravelTime(rider.Origin)
		// Strict less keeps the earliest-registered driver on ties.
		if best == nil || t < bestTime {
			best = drv
			bestTime = t
		}
	}

	if best == nil {
		d.waitlist.Push(&waitingRider{rider: rider, requestedAt: timestamp})
		logger.Debug("no idle driver, rider waitlisted",
			logger.String("rider_id", rider.ID),
			logger.Int("timestamp", timestamp),
			logger.Int("waitlist_len", d.waitlist.Len()))
		return nil
	}

	// Assignment and the idle flip are one step.
	best.IsIdle = false
	logger.Debug("driver assigned to rider",
		logger.String("driver_id", best.ID),
		logger.String("rider_id", rider.ID),
		logger.Int("travel_time", bestTime))
	return best
}

// RequestRider registers the driver (idempotently) and returns the
// earliest-waiting rider, or nil if the wait-list is empty. A returned
// rider is removed from the wait-list in the same call.
func (d *Dispatcher) RequestRider(driver *models.Driver) *models.Rider {
	d.Register(driver)

	w, err := d.waitlist.Pop()
	if err != nil {
		return nil
	}
	logger.Debug("rider assigned to driver",
		logger.String("driver_id", driver.ID),
		logger.String("rider_id", w.rider.ID))
	return w.rider
}

// Register adds the driver to the fleet if it has not been seen before.
func (d *Dispatcher) Register(driver *models.Driver) {
	if _, ok := d.byID[driver.ID]; ok {
		return
	}
	d.byID[driver.ID] = driver
	d.fleet = append(d.fleet, driver)
}

// CancelRide takes the rider off the wait-list if present and cancels
// them. Both halves are safe no-ops: the rider may already have been
// dequeued for a pickup, and Cancel never leaves a terminal state.
func (d *Dispatcher) CancelRide(rider *models.Rider) {
	d.RemoveFromWaitlist(rider)
	rider.Cancel()
}

// RemoveFromWaitlist removes the rider from the wait-list and reports
// whether it was present.
func (d *Dispatcher) RemoveFromWaitlist(rider *models.Rider) bool {
	return d.waitlist.Remove(func(w *waitingRider) bool {
		return w.rider.ID == rider.ID
	})
}

// FleetSize returns the number of registered drivers.
func (d *Dispatcher) FleetSize() int { return len(d.fleet) }

// WaitlistLen returns the number of riders currently waiting.
func (d *Dispatcher) WaitlistLen() int { return d.waitlist.Len() }
