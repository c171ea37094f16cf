package ingest

import (
	"fmt"

	"footsense-monitor/internal/config"
	"footsense-monitor/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// ReadingHandler consumes one validated reading. Called from the MQTT
// client's delivery goroutine, one message at a time per subscription.
type ReadingHandler func(reading models.SensorReading)

// MQTTConsumer subscribes to the device gateway's reading topic and feeds
// parsed readings to a handler. Malformed payloads are logged and dropped
// at this boundary.
type MQTTConsumer struct {
	client mqtt.Client
	topic  string
	qos    byte
	logger *zap.Logger
}

// NewMQTTConsumer connects to the broker configured in cfg.
func NewMQTTConsumer(cfg *config.Config, logger *zap.Logger) (*MQTTConsumer, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTT.Broker)
	opts.SetClientID(cfg.MQTT.ClientID)
	if cfg.MQTT.Username != "" {
		opts.SetUsername(cfg.MQTT.Username)
	}
	if cfg.MQTT.Password != "" {
		opts.SetPassword(cfg.MQTT.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return &MQTTConsumer{
		client: client,
		topic:  cfg.MQTT.ReadingTopic,
		qos:    byte(cfg.MQTT.QoS),
		logger: logger,
	}, nil
}

// Start subscribes to the reading topic.
func (c *MQTTConsumer) Start(handler ReadingHandler) error {
	token := c.client.Subscribe(c.topic, c.qos, func(_ mqtt.Client, msg mqtt.Message) {
		reading, err := ParseReading(msg.Payload())
		if err != nil {
			c.logger.Warn("Dropping malformed reading",
				zap.String("topic", msg.Topic()),
				zap.Error(err),
			)
			return
		}
		handler(reading)
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", c.topic, token.Error())
	}

	c.logger.Info("Subscribed to reading topic",
		zap.String("topic", c.topic),
	)
	return nil
}

// Stop disconnects from the broker.
func (c *MQTTConsumer) Stop() {
	c.client.Disconnect(250)
}
