// Package scenario turns scenario files into seed events.
//
// A scenario file is plain text, one directive per line:
//
//	<timestamp> DriverRequest <driver_id> <row,col> <speed>
//	<timestamp> RiderRequest <rider_id> <row,col> <row,col> <patience>
//
// Blank lines and lines starting with # are skipped. Seed events are
// produced in file order, which is what preserves the FIFO tie-break
// among directives sharing a timestamp.
package scenario

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piresc/dispatchsim/internal/pkg/models"
)

// Load reads the scenario file at path and returns its seed events.
func Load(path string) ([]models.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer file.Close()

	events, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	return events, nil
}

// Parse reads scenario directives from r and returns seed events.
func Parse(r io.Reader) ([]models.Event, error) {
	var events []models.Event

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		event, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	return events, nil
}

func parseLine(line string) (models.Event, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return models.Event{}, fmt.Errorf("expected at least a timestamp and an event type, got %q", line)
	}

	timestamp, err := strconv.Atoi(tokens[0])
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid timestamp %q: %w", tokens[0], err)
	}
	if timestamp < 0 {
		return models.Event{}, fmt.Errorf("negative timestamp %d", timestamp)
	}

	switch tokens[1] {
	case "DriverRequest":
		return parseDriverRequest(timestamp, tokens)
	case "RiderRequest":
		return parseRiderRequest(timestamp, tokens)
	default:
		return models.Event{}, fmt.Errorf("%w: %q", models.ErrUnknownEventType, tokens[1])
	}
}

func parseDriverRequest(timestamp int, tokens []string) (models.Event, error) {
	if len(tokens) != 5 {
		return models.Event{}, fmt.Errorf("DriverRequest expects <id> <location> <speed>, got %d fields", len(tokens)-2)
	}
	location, err := models.ParseLocation(tokens[3])
	if err != nil {
		return models.Event{}, err
	}
	speed, err := strconv.Atoi(tokens[4])
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid speed %q: %w", tokens[4], err)
	}
	if speed <= 0 {
		return models.Event{}, fmt.Errorf("driver %s speed must be positive, got %d", tokens[2], speed)
	}

	return models.Event{
		Timestamp: timestamp,
		Kind:      models.EventDriverRequest,
		Driver:    models.NewDriver(tokens[2], location, speed),
	}, nil
}

func parseRiderRequest(timestamp int, tokens []string) (models.Event, error) {
	if len(tokens) != 6 {
		return models.Event{}, fmt.Errorf("RiderRequest expects <id> <origin> <destination> <patience>, got %d fields", len(tokens)-2)
	}
	origin, err := models.ParseLocation(tokens[3])
	if err != nil {
		return models.Event{}, err
	}
	destination, err := models.ParseLocation(tokens[4])
	if err != nil {
		return models.Event{}, err
	}
	patience, err := strconv.Atoi(tokens[5])
	if err != nil {
		return models.Event{}, fmt.Errorf("invalid patience %q: %w", tokens[5], err)
	}
	if patience < 0 {
		return models.Event{}, fmt.Errorf("rider %s patience must be non-negative, got %d", tokens[2], patience)
	}

	return models.Event{
		Timestamp: timestamp,
		Kind:      models.EventRiderRequest,
		Rider:     models.NewRider(tokens[2], origin, destination, patience),
	}, nil
}
