package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/piresc/dispatchsim/internal/pkg/models"
)

// InitConfig loads configuration for a simulation run. In local
// environments the .env file at configPath is loaded first; after that
// every setting is resolved through viper, so an optional config.yaml
// and plain environment variables both work.
func InitConfig(configPath string) *models.Config {
	local := getEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("no yaml config file loaded: %s", err)
	}

	return loadConfig()
}

func loadConfig() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = getString("APP_NAME", "dispatchsim")
	configs.App.Environment = getString("APP_ENV", "local")
	configs.App.Debug = getBool("APP_DEBUG", true)
	configs.App.Version = getString("APP_VERSION", "")

	// Simulation config
	configs.Simulation.ScenarioPath = getString("SIM_SCENARIO_PATH", "scenarios/events.txt")
	configs.Simulation.Horizon = getInt("SIM_HORIZON", 0)
	configs.Simulation.TraceEvents = getBool("SIM_TRACE_EVENTS", false)

	// Logger config
	configs.Logger.Level = getString("LOG_LEVEL", "info")
	configs.Logger.FilePath = getString("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to resolve settings with defaults through viper

func getString(key, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return defaultValue
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
