package models

// ActivityCategory says who performed an activity.
type ActivityCategory string

const (
	CategoryRider  ActivityCategory = "RIDER"
	CategoryDriver ActivityCategory = "DRIVER"
)

// ActivityKind describes what happened.
type ActivityKind string

const (
	ActivityRequest ActivityKind = "REQUEST"
	ActivityCancel  ActivityKind = "CANCEL"
	ActivityPickup  ActivityKind = "PICKUP"
	ActivityDropoff ActivityKind = "DROPOFF"
)

// Activity is one recorded occurrence in the simulation, as reported to
// the monitor.
type Activity struct {
	Timestamp  int          `json:"timestamp"`
	Kind       ActivityKind `json:"kind"`
	Identifier string       `json:"identifier"`
	Location   Location     `json:"location"`
}

// Report is the monitor's aggregate view of a finished run.
type Report struct {
	RiderWaitTime       float64 `json:"rider_wait_time"`
	DriverTotalDistance float64 `json:"driver_total_distance"`
	DriverRideDistance  float64 `json:"driver_ride_distance"`
}
