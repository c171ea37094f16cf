package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"footsense-monitor/internal/config"
	"footsense-monitor/internal/ingest"
	"footsense-monitor/internal/logger"
	"footsense-monitor/internal/models"
	"footsense-monitor/internal/publisher"
	"footsense-monitor/internal/service"

	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logging
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "footsense-monitor")
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer log.Sync()

	// 3. Connect Redis (output boundary for downstream collaborators)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisClient := publisher.NewRedisClient(cfg)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to ping redis",
			zap.Error(err),
		)
	}
	defer redisClient.Close()

	// 4. Create the monitoring session
	monitor := service.NewMonitor(cfg, log, publisher.New(redisClient, cfg, log))
	defer monitor.Close()

	// 5. Connect the reading delivery channel
	consumer, err := ingest.NewMQTTConsumer(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to MQTT broker",
			zap.Error(err),
		)
	}
	defer consumer.Stop()

	if err := consumer.Start(func(reading models.SensorReading) {
		monitor.ProcessReading(ctx, reading)
	}); err != nil {
		log.Fatal("Failed to subscribe to readings",
			zap.Error(err),
		)
	}

	log.Info("Monitor started",
		zap.String("broker", cfg.MQTT.Broker),
		zap.String("reading_topic", cfg.MQTT.ReadingTopic),
		zap.Int("history_size", cfg.Monitor.HistorySize),
	)

	// 6. Wait for a signal (graceful shutdown)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Info("Received signal, shutting down",
		zap.String("signal", sig.String()),
	)
}
