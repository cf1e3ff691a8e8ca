package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/piresc/dispatchsim/internal/pkg/config"
	"github.com/piresc/dispatchsim/internal/pkg/logger"
	"github.com/piresc/dispatchsim/services/dispatch"
	"github.com/piresc/dispatchsim/services/monitor"
	"github.com/piresc/dispatchsim/services/scenario"
	"github.com/piresc/dispatchsim/services/simulation"
)

func main() {
	configPath := flag.String("config", "config/dispatchsim.env", "path to the .env config file")
	scenarioPath := flag.String("scenario", "", "scenario file (overrides SIM_SCENARIO_PATH)")
	flag.Parse()

	configs := config.InitConfig(*configPath)
	if *scenarioPath != "" {
		configs.Simulation.ScenarioPath = *scenarioPath
	}

	// Initialize logger
	appLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	// Load scenario seed events
	seedEvents, err := scenario.Load(configs.Simulation.ScenarioPath)
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}

	// Wire the simulation
	dispatcher := dispatch.NewDispatcher()
	activityMonitor := monitor.NewMonitor()
	engine := simulation.NewEngine(configs.Simulation, dispatcher, activityMonitor)
	for _, event := range seedEvents {
		engine.Schedule(event)
	}

	// Stop cleanly on interrupt; the engine checks the context between
	// events.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	processed, err := engine.Run(ctx)
	if err != nil {
		log.Fatalf("Simulation aborted after %d events: %v", processed, err)
	}

	report := activityMonitor.Report()
	logger.Info("report ready",
		logger.Float64("rider_wait_time", report.RiderWaitTime),
		logger.Float64("driver_total_distance", report.DriverTotalDistance),
		logger.Float64("driver_ride_distance", report.DriverRideDistance),
		logger.Int("riders", activityMonitor.RiderCount()),
		logger.Int("drivers", activityMonitor.DriverCount()))

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}
	fmt.Println(string(out))
}
