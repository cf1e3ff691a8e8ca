package simulation

import (
	"fmt"

	"github.com/piresc/dispatchsim/internal/pkg/models"
)

// Notifier receives activity notifications from the engine. It is
// fire-and-forget: implementations must not fail the event's own state
// transition.
type Notifier interface {
	Notify(timestamp int, category models.ActivityCategory, kind models.ActivityKind, identifier string, location models.Location)
}

// apply runs one event against the dispatcher and returns the follow-up
// events it spawns. This switch is the whole event state machine; every
// kind is handled here and an unhandled kind is a corrupted queue.
func (e *Engine) apply(event models.Event) ([]models.Event, error) {
	switch event.Kind {
	case models.EventRiderRequest:
		return e.applyRiderRequest(event)
	case models.EventDriverRequest:
		return e.applyDriverRequest(event)
	case models.EventCancellation:
		return e.applyCancellation(event)
	case models.EventPickup:
		return e.applyPickup(event)
	case models.EventDropoff:
		return e.applyDropoff(event)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownEventType, string(event.Kind))
	}
}

// applyRiderRequest asks the dispatcher for a driver. A matched driver
// starts driving to the rider's origin. The cancellation is scheduled
// unconditionally at now+patience: it is the rider's patience timeout,
// and its handler checks the rider's status before acting, so a pickup
// that happens first simply defuses it.
func (e *Engine) applyRiderRequest(event models.Event) ([]models.Event, error) {
	rider := event.Rider
	e.notifier.Notify(event.Timestamp, models.CategoryRider, models.ActivityRequest, rider.ID, rider.Origin)

	var followUps []models.Event
	if driver := e.dispatcher.RequestDriver(rider, event.Timestamp); driver != nil {
		travelTime, err := driver.StartDrive(rider.Origin)
		if err != nil {
			return nil, fmt.Errorf("rider request for %s: %w", rider.ID, err)
		}
		followUps = append(followUps, models.Event{
			Timestamp: event.Timestamp + travelTime,
			Kind:      models.EventPickup,
			Rider:     rider,
			Driver:    driver,
		})
	}
	followUps = append(followUps, models.Event{
		Timestamp: event.Timestamp + rider.Patience,
		Kind:      models.EventCancellation,
		Rider:     rider,
	})
	return followUps, nil
}

// applyDriverRequest registers the driver and asks the dispatcher for a
// waiting rider. A match sends the driver toward the rider's origin.
func (e *Engine) applyDriverRequest(event models.Event) ([]models.Event, error) {
	driver := event.Driver
	e.notifier.Notify(event.Timestamp, models.CategoryDriver, models.ActivityRequest, driver.ID, driver.Location)

	rider := e.dispatcher.RequestRider(driver)
	if rider == nil {
		return nil, nil
	}

	travelTime, err := driver.StartDrive(rider.Origin)
	if err != nil {
		return nil, fmt.Errorf("driver request for %s: %w", driver.ID, err)
	}
	return []models.Event{{
		Timestamp: event.Timestamp + travelTime,
		Kind:      models.EventPickup,
		Rider:     rider,
		Driver:    driver,
	}}, nil
}

// applyCancellation fires the rider's patience timeout. A rider already
// picked up or already cancelled is left alone.
func (e *Engine) applyCancellation(event models.Event) ([]models.Event, error) {
	rider := event.Rider
	if rider.Status != models.RiderStatusWaiting {
		return nil, nil
	}

	e.notifier.Notify(event.Timestamp, models.CategoryRider, models.ActivityCancel, rider.ID, rider.Origin)
	e.dispatcher.CancelRide(rider)
	return nil, nil
}

// applyPickup has the driver arrive at the rider's origin. If the rider
// is still waiting the ride starts; if their patience expired first the
// driver goes back to looking for a rider at no time cost. The two
// branches are exhaustive: a satisfied rider cannot reach a second
// pickup, so seeing one here means the event sequencing broke.
func (e *Engine) applyPickup(event models.Event) ([]models.Event, error) {
	rider := event.Rider
	driver := event.Driver

	if err := driver.EndDrive(); err != nil {
		return nil, fmt.Errorf("pickup of %s by %s: %w", rider.ID, driver.ID, err)
	}

	switch rider.Status {
	case models.RiderStatusWaiting:
		e.notifier.Notify(event.Timestamp, models.CategoryDriver, models.ActivityPickup, driver.ID, rider.Origin)
		e.notifier.Notify(event.Timestamp, models.CategoryRider, models.ActivityPickup, rider.ID, rider.Origin)

		travelTime, err := driver.StartRide(rider)
		if err != nil {
			return nil, fmt.Errorf("pickup of %s by %s: %w", rider.ID, driver.ID, err)
		}
		if err := rider.Satisfy(); err != nil {
			return nil, fmt.Errorf("pickup of %s by %s: %w", rider.ID, driver.ID, err)
		}
		e.dispatcher.RemoveFromWaitlist(rider)

		return []models.Event{{
			Timestamp: event.Timestamp + travelTime,
			Kind:      models.EventDropoff,
			Rider:     rider,
			Driver:    driver,
		}}, nil

	case models.RiderStatusCancelled:
		// The rider gave up before the driver arrived; no pickup is
		// recorded and the driver rejoins the idle pool immediately.
		driver.IsIdle = true
		return []models.Event{{
			Timestamp: event.Timestamp,
			Kind:      models.EventDriverRequest,
			Driver:    driver,
		}}, nil

	default:
		return nil, fmt.Errorf("%w: pickup reached rider %s in status %s", models.ErrInvalidTransition, rider.ID, rider.Status)
	}
}

// applyDropoff completes the ride and sends the driver looking for the
// next rider at the same tick.
func (e *Engine) applyDropoff(event models.Event) ([]models.Event, error) {
	rider := event.Rider
	driver := event.Driver

	e.notifier.Notify(event.Timestamp, models.CategoryDriver, models.ActivityDropoff, driver.ID, rider.Destination)
	e.notifier.Notify(event.Timestamp, models.CategoryRider, models.ActivityDropoff, rider.ID, rider.Destination)

	if err := driver.EndRide(); err != nil {
		return nil, fmt.Errorf("dropoff of %s by %s: %w", rider.ID, driver.ID, err)
	}

	return []models.Event{{
		Timestamp: event.Timestamp,
		Kind:      models.EventDriverRequest,
		Driver:    driver,
	}}, nil
}
