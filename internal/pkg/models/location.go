package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a position on the simulation grid.
type Location struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String returns the location in "row,col" form, the same format
// scenario files use.
func (l Location) String() string {
	return fmt.Sprintf("%d,%d", l.Row, l.Col)
}

// ManhattanDistance returns the Manhattan distance between origin and
// destination. It is symmetric and zero iff the locations are equal.
func ManhattanDistance(origin, destination Location) int {
	return abs(destination.Row-origin.Row) + abs(destination.Col-origin.Col)
}

// ParseLocation parses a location in "row,col" form.
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("invalid location %q: expected row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Location{}, fmt.Errorf("invalid location row %q: %w", parts[0], err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Location{}, fmt.Errorf("invalid location column %q: %w", parts[1], err)
	}
	return Location{Row: row, Col: col}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
