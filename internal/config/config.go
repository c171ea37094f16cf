package config

import (
	"os"
	"strconv"
)

// Config holds the monitoring service configuration.
type Config struct {
	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	MQTT struct {
		Broker       string
		ClientID     string
		Username     string
		Password     string
		ReadingTopic string // topic the device gateway publishes readings on
		QoS          int
	}

	// Engine knobs
	Monitor struct {
		HistorySize      int    // readings kept for trend detection
		AlertCooldownSec int    // minimum seconds between firings of one rule
		MaxStoredAlerts  int    // in-memory alert store cap
		SubscriberBuffer int    // per-observer alert channel buffer
		ScoreStream      string // Redis stream risk scores are published to
		AlertStream      string // Redis stream alerts are published to
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load builds the configuration from environment variables with defaults.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.MQTT.Broker = getEnv("MQTT_BROKER", "tcp://localhost:1883")
	cfg.MQTT.ClientID = getEnv("MQTT_CLIENT_ID", "footsense-monitor")
	cfg.MQTT.Username = getEnv("MQTT_USERNAME", "")
	cfg.MQTT.Password = getEnv("MQTT_PASSWORD", "")
	cfg.MQTT.ReadingTopic = getEnv("MQTT_READING_TOPIC", "footsense/readings")
	cfg.MQTT.QoS = getEnvInt("MQTT_QOS", 1)

	cfg.Monitor.HistorySize = getEnvInt("MONITOR_HISTORY_SIZE", 30)
	cfg.Monitor.AlertCooldownSec = getEnvInt("MONITOR_ALERT_COOLDOWN", 300) // 5 minutes
	cfg.Monitor.MaxStoredAlerts = getEnvInt("MONITOR_MAX_ALERTS", 100)
	cfg.Monitor.SubscriberBuffer = getEnvInt("MONITOR_SUBSCRIBER_BUFFER", 16)
	cfg.Monitor.ScoreStream = getEnv("MONITOR_SCORE_STREAM", "footsense:scores")
	cfg.Monitor.AlertStream = getEnv("MONITOR_ALERT_STREAM", "footsense:alerts")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
