// Package publisher pushes risk scores and alerts onto Redis Streams for
// the persistence and notification collaborators downstream. It adds no
// engine semantics of its own.
package publisher

import (
	"context"
	"fmt"

	"footsense-monitor/internal/config"
	"footsense-monitor/internal/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Publisher writes engine output to the configured streams.
type Publisher struct {
	client      *redis.Client
	scoreStream string
	alertStream string
	logger      *zap.Logger
}

// NewRedisClient creates the Redis client from configuration.
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// New creates a publisher on an existing Redis client.
func New(client *redis.Client, cfg *config.Config, logger *zap.Logger) *Publisher {
	return &Publisher{
		client:      client,
		scoreStream: cfg.Monitor.ScoreStream,
		alertStream: cfg.Monitor.AlertStream,
		logger:      logger,
	}
}

// PublishScore appends a risk score to the score stream.
func (p *Publisher) PublishScore(ctx context.Context, score models.RiskScore) error {
	id, err := publishJSONToStream(ctx, p.client, p.scoreStream, score)
	if err != nil {
		return fmt.Errorf("failed to publish risk score: %w", err)
	}
	p.logger.Debug("Risk score published",
		zap.String("stream", p.scoreStream),
		zap.String("message_id", id),
		zap.Int("overall_score", score.OverallScore),
	)
	return nil
}

// PublishAlert appends an alert to the alert stream.
func (p *Publisher) PublishAlert(ctx context.Context, alert models.Alert) error {
	id, err := publishJSONToStream(ctx, p.client, p.alertStream, alert)
	if err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}
	p.logger.Debug("Alert published",
		zap.String("stream", p.alertStream),
		zap.String("message_id", id),
		zap.String("alert_id", alert.ID),
	)
	return nil
}
