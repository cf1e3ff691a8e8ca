// Package simulation drives the discrete-event loop: pop the earliest
// event, apply it, push its follow-ups, repeat until the queue drains.
package simulation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/piresc/dispatchsim/internal/pkg/logger"
	"github.com/piresc/dispatchsim/internal/pkg/models"
	"github.com/piresc/dispatchsim/internal/pkg/queue"
	"github.com/piresc/dispatchsim/services/dispatch"
)

// Engine owns the global event queue and the logical clock. Events are
// applied in strict non-decreasing timestamp order; equal timestamps
// apply in schedule order, which the queue's FIFO tie-break guarantees.
type Engine struct {
	runID      string
	cfg        models.SimulationConfig
	events     *queue.OrderedQueue[models.Event]
	dispatcher *dispatch.Dispatcher
	notifier   Notifier

	clock     int
	processed int
}

// NewEngine creates an engine wired to the given dispatcher and notifier.
func NewEngine(cfg models.SimulationConfig, dispatcher *dispatch.Dispatcher, notifier Notifier) *Engine {
	return &Engine{
		runID: uuid.NewString(),
		cfg:   cfg,
		events: queue.New(func(ev models.Event) int {
			return ev.Timestamp
		}),
		dispatcher: dispatcher,
		notifier:   notifier,
	}
}

// Schedule queues an event. Seed events must be scheduled in scenario
// order so equal timestamps keep their file order.
func (e *Engine) Schedule(event models.Event) {
	e.events.Push(event)
}

// Clock returns the timestamp of the last applied event.
func (e *Engine) Clock() int { return e.clock }

// Processed returns the number of events applied so far.
func (e *Engine) Processed() int { return e.processed }

// Run drains the event queue and returns the number of events applied.
// An exhausted queue is normal completion. Any error means an invariant
// was violated and the simulation state can no longer be trusted; the
// run is aborted rather than continued.
func (e *Engine) Run(ctx context.Context) (int, error) {
	logger.Info("simulation run starting",
		logger.String("run_id", e.runID),
		logger.Int("seed_events", e.events.Len()),
		logger.Int("horizon", e.cfg.Horizon))

	for !e.events.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return e.processed, fmt.Errorf("simulation interrupted at tick %d: %w", e.clock, err)
		}

		event, err := e.events.Pop()
		if err != nil {
			// Unreachable: emptiness is checked above.
			return e.processed, err
		}

		// Events never run before the clock; the queue ordering plus
		// the follow-up timestamp check below make this impossible in
		// a healthy run.
		if event.Timestamp < e.clock {
			return e.processed, fmt.Errorf("event %s precedes clock %d", event, e.clock)
		}

		// Everything still queued is at or past the horizon; the rest
		// of the queue is discarded wholesale.
		if e.cfg.Horizon > 0 && event.Timestamp > e.cfg.Horizon {
			logger.Info("horizon reached, discarding remaining events",
				logger.String("run_id", e.runID),
				logger.Int("horizon", e.cfg.Horizon),
				logger.Int("discarded", e.events.Len()+1))
			break
		}

		e.clock = event.Timestamp
		if e.cfg.TraceEvents {
			logger.Debug("applying event",
				logger.String("run_id", e.runID),
				logger.Stringer("event", event))
		}

		followUps, err := e.apply(event)
		if err != nil {
			return e.processed, fmt.Errorf("tick %d: %w", e.clock, err)
		}
		e.processed++

		for _, followUp := range followUps {
			if followUp.Timestamp < event.Timestamp {
				return e.processed, fmt.Errorf("event %s scheduled follow-up %s in the past", event, followUp)
			}
			e.events.Push(followUp)
		}
	}

	logger.Info("simulation run complete",
		logger.String("run_id", e.runID),
		logger.Int("events_processed", e.processed),
		logger.Int("final_tick", e.clock))
	return e.processed, nil
}
