// Package service wires the engine together: history window, risk scorer,
// alert engine, alert store and broadcast channel, one Monitor per
// monitored session.
package service

import (
	"context"
	"sync"
	"time"

	"footsense-monitor/internal/alerting"
	"footsense-monitor/internal/config"
	"footsense-monitor/internal/history"
	"footsense-monitor/internal/models"
	"footsense-monitor/internal/scorer"

	"go.uber.org/zap"
)

// OutputPublisher delivers engine output to downstream collaborators.
// Implementations must tolerate being called once per processed reading.
type OutputPublisher interface {
	PublishScore(ctx context.Context, score models.RiskScore) error
	PublishAlert(ctx context.Context, alert models.Alert) error
}

// Monitor is one monitoring session. A single mutex serializes the whole
// process-one-reading step (history update, scoring, alert evaluation and
// store insertion), so concurrent readers of the score and alert state see
// either the pre- or the post-update state, never a partial one.
type Monitor struct {
	cfg    *config.Config
	logger *zap.Logger

	mu        sync.Mutex
	window    *history.Window
	scorer    *scorer.Scorer
	engine    *alerting.Engine
	store     *alerting.Store
	broadcast *alerting.Broadcaster
	output    OutputPublisher // optional, nil when no downstream is wired
	lastScore *models.RiskScore
}

// NewMonitor creates a session with default thresholds and the configured
// capacities. output may be nil.
func NewMonitor(cfg *config.Config, logger *zap.Logger, output OutputPublisher) *Monitor {
	thresholds := models.DefaultThresholds()
	return &Monitor{
		cfg:       cfg,
		logger:    logger,
		output:    output,
		window:    history.NewWindow(cfg.Monitor.HistorySize),
		scorer:    scorer.NewScorer(thresholds),
		engine:    alerting.NewEngine(thresholds, time.Duration(cfg.Monitor.AlertCooldownSec)*time.Second, logger),
		store:     alerting.NewStore(cfg.Monitor.MaxStoredAlerts),
		broadcast: alerting.NewBroadcaster(cfg.Monitor.SubscriberBuffer),
	}
}

// ProcessReading runs one reading through the engine to completion and
// returns the fresh risk score plus any alerts that fired. Processing
// cannot fail and never blocks on observers or downstream publishers.
func (m *Monitor) ProcessReading(ctx context.Context, reading models.SensorReading) (models.RiskScore, []models.Alert) {
	m.mu.Lock()
	m.window.Push(reading)
	snapshot := m.window.Snapshot()
	score := m.scorer.Score(reading, snapshot)
	alerts := m.engine.Evaluate(reading, snapshot)
	for _, alert := range alerts {
		m.store.Add(alert)
	}
	m.lastScore = &score
	m.mu.Unlock()

	for _, alert := range alerts {
		m.broadcast.Publish(alert)
	}

	if m.output != nil {
		if err := m.output.PublishScore(ctx, score); err != nil {
			m.logger.Error("Failed to publish risk score",
				zap.Error(err),
			)
		}
		for _, alert := range alerts {
			if err := m.output.PublishAlert(ctx, alert); err != nil {
				m.logger.Error("Failed to publish alert",
					zap.String("alert_id", alert.ID),
					zap.Error(err),
				)
			}
		}
	}

	m.logger.Debug("Reading processed",
		zap.Int("overall_score", score.OverallScore),
		zap.String("severity", string(score.Severity)),
		zap.Int("alerts", len(alerts)),
	)
	return score, alerts
}

// CurrentScore returns the most recent risk score, if any reading has been
// processed yet.
func (m *Monitor) CurrentScore() (models.RiskScore, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastScore == nil {
		return models.RiskScore{}, false
	}
	return *m.lastScore, true
}

// History returns the current reading window in chronological order.
func (m *Monitor) History() []models.SensorReading {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.window.Snapshot()
}

// Alerts exposes the session's alert store for queries and read-state
// updates.
func (m *Monitor) Alerts() *alerting.Store {
	return m.store
}

// Subscribe registers an alert observer.
func (m *Monitor) Subscribe() (<-chan models.Alert, func()) {
	return m.broadcast.Subscribe()
}

// Reset starts a fresh session on the same Monitor: empty history, no
// score, cleared rule cooldowns. Stored alerts are kept; clearing them is
// an explicit user action on the store.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.window = history.NewWindow(m.cfg.Monitor.HistorySize)
	m.engine.ResetCooldowns()
	m.lastScore = nil
}

// Close shuts down the broadcast channel.
func (m *Monitor) Close() {
	m.broadcast.Close()
}
