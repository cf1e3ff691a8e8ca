package models

// Config holds all application configuration.
type Config struct {
	App        AppConfig
	Simulation SimulationConfig
	Logger     LoggerConfig
}

// AppConfig holds application identity configuration.
type AppConfig struct {
	Name        string `json:"name" mapstructure:"name"`
	Environment string `json:"environment" mapstructure:"environment"`
	Debug       bool   `json:"debug" mapstructure:"debug"`
	Version     string `json:"version" mapstructure:"version"`
}

// SimulationConfig holds the knobs for one simulation run.
type SimulationConfig struct {
	// ScenarioPath is the scenario file to seed the run from.
	ScenarioPath string `json:"scenario_path" mapstructure:"scenario_path"`
	// Horizon stops the run once the logical clock passes it; zero
	// means run until the event queue drains.
	Horizon int `json:"horizon" mapstructure:"horizon"`
	// TraceEvents logs every applied event at debug level.
	TraceEvents bool `json:"trace_events" mapstructure:"trace_events"`
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}
