// Package monitor records the activities the simulation reports and
// aggregates them into a run report.
package monitor

import (
	"github.com/piresc/dispatchsim/internal/pkg/models"
)

// Monitor keeps per-actor activity histories, keyed by category and
// identifier. Notifications arrive in timestamp order because the
// engine applies events in timestamp order, so each history is already
// time-sorted.
type Monitor struct {
	activities map[models.ActivityCategory]map[string][]models.Activity
}

// NewMonitor creates an empty monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		activities: map[models.ActivityCategory]map[string][]models.Activity{
			models.CategoryRider:  {},
			models.CategoryDriver: {},
		},
	}
}

// Notify records one activity. It never fails: the monitor is a passive
// recorder and must not disturb the event that reported the activity.
func (m *Monitor) Notify(timestamp int, category models.ActivityCategory, kind models.ActivityKind, identifier string, location models.Location) {
	byID, ok := m.activities[category]
	if !ok {
		byID = map[string][]models.Activity{}
		m.activities[category] = byID
	}
	byID[identifier] = append(byID[identifier], models.Activity{
		Timestamp:  timestamp,
		Kind:       kind,
		Identifier: identifier,
		Location:   location,
	})
}

// RiderCount returns the number of riders seen.
func (m *Monitor) RiderCount() int { return len(m.activities[models.CategoryRider]) }

// DriverCount returns the number of drivers seen.
func (m *Monitor) DriverCount() int { return len(m.activities[models.CategoryDriver]) }

// Report aggregates the recorded activities.
func (m *Monitor) Report() models.Report {
	return models.Report{
		RiderWaitTime:       m.averageWaitTime(),
		DriverTotalDistance: m.averageTotalDistance(),
		DriverRideDistance:  m.averageRideDistance(),
	}
}

// averageWaitTime averages the wait of riders that finished waiting.
// A rider's first activity is always REQUEST and the second, when
// present, is PICKUP or CANCEL; riders with a single activity are still
// waiting and are left out.
func (m *Monitor) averageWaitTime() float64 {
	waitTime := 0
	count := 0
	for _, activities := range m.activities[models.CategoryRider] {
		if len(activities) >= 2 {
			waitTime += activities[1].Timestamp - activities[0].Timestamp
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(waitTime) / float64(count)
}

// averageTotalDistance averages, per driver, everything driven: legs to
// pickups plus legs with a rider on board.
func (m *Monitor) averageTotalDistance() float64 {
	totalDist := 0
	count := 0
	for id := range m.activities[models.CategoryDriver] {
		totalDist += m.riderlessDistance(id) + m.rideDistance(id)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(totalDist) / float64(count)
}

// averageRideDistance averages, per driver, only the legs driven with a
// rider on board.
func (m *Monitor) averageRideDistance() float64 {
	totalDist := 0
	count := 0
	for id := range m.activities[models.CategoryDriver] {
		totalDist += m.rideDistance(id)
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(totalDist) / float64(count)
}

// riderlessDistance sums the legs from each REQUEST activity to the
// activity that follows it: the empty drive toward a pickup.
func (m *Monitor) riderlessDistance(driverID string) int {
	activities := m.activities[models.CategoryDriver][driverID]
	totalDist := 0
	for i := 0; i < len(activities)-1; i++ {
		if activities[i].Kind == models.ActivityRequest {
			totalDist += models.ManhattanDistance(activities[i].Location, activities[i+1].Location)
		}
	}
	return totalDist
}

// rideDistance sums the PICKUP→DROPOFF legs: distance driven with a
// rider on board.
func (m *Monitor) rideDistance(driverID string) int {
	activities := m.activities[models.CategoryDriver][driverID]
	totalDist := 0
	for i := 0; i < len(activities)-1; i++ {
		if activities[i].Kind == models.ActivityPickup && activities[i+1].Kind == models.ActivityDropoff {
			totalDist += models.ManhattanDistance(activities[i].Location, activities[i+1].Location)
		}
	}
	return totalDist
}
