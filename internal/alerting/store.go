package alerting

import (
	"sync"
	"time"

	"footsense-monitor/internal/models"
)

// DefaultStoreCapacity is the reference cap on stored alerts.
const DefaultStoreCapacity = 100

// Store is the bounded in-memory alert store: newest first, trimmed from
// the tail once the cap is exceeded. It is RWMutex-guarded so concurrent
// readers (status displays, alert lists) always observe a consistent
// snapshot while the session's single writer mutates it.
type Store struct {
	mu       sync.RWMutex
	capacity int
	alerts   []models.Alert // newest first
	now      func() time.Time
}

// NewStore creates a store with the given capacity. Non-positive
// capacities fall back to DefaultStoreCapacity.
func NewStore(capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultStoreCapacity
	}
	return &Store{
		capacity: capacity,
		alerts:   make([]models.Alert, 0, capacity),
		now:      time.Now,
	}
}

// Add inserts an alert at the head and evicts the oldest beyond capacity.
func (s *Store) Add(alert models.Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append(s.alerts, models.Alert{})
	copy(s.alerts[1:], s.alerts)
	s.alerts[0] = alert
	if len(s.alerts) > s.capacity {
		s.alerts = s.alerts[:s.capacity]
	}
}

// All returns every stored alert, newest first.
func (s *Store) All() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyAlerts(s.alerts)
}

// Len returns the number of stored alerts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alerts)
}

// MarkRead flips the read flag on one alert. Returns false when the id is
// unknown.
func (s *Store) MarkRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts[i].Read = true
			return true
		}
	}
	return false
}

// MarkAllRead flips the read flag on every stored alert.
func (s *Store) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		s.alerts[i].Read = true
	}
}

// Remove deletes one alert by id. Returns false when the id is unknown.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every stored alert.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = s.alerts[:0]
}

// ClearOlderThan removes alerts older than the given age and returns how
// many were removed.
func (s *Store) ClearOlderThan(age time.Duration) int {
	cutoff := s.now().Add(-age).UnixMilli()

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if a.Timestamp >= cutoff {
			kept = append(kept, a)
		}
	}
	removed := len(s.alerts) - len(kept)
	s.alerts = kept
	return removed
}

// ByType returns the stored alerts of one type, newest first.
func (s *Store) ByType(t models.AlertType) []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Alert
	for _, a := range s.alerts {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// BySeverity returns the stored alerts of one severity, newest first.
func (s *Store) BySeverity(sev models.AlertSeverity) []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Alert
	for _, a := range s.alerts {
		if a.Severity == sev {
			out = append(out, a)
		}
	}
	return out
}

// Recent returns the alerts from the last given number of hours, newest
// first.
func (s *Store) Recent(hours int) []models.Alert {
	cutoff := s.now().Add(-time.Duration(hours) * time.Hour).UnixMilli()

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Alert
	for _, a := range s.alerts {
		if a.Timestamp >= cutoff {
			out = append(out, a)
		}
	}
	return out
}

// Stats counts the current store contents by severity and type. Computed
// on demand, never cached, so it is always consistent with the store.
func (s *Store) Stats() models.AlertStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.AlertStats{
		Total:      len(s.alerts),
		BySeverity: make(map[models.AlertSeverity]int),
		ByType:     make(map[models.AlertType]int),
	}
	for _, a := range s.alerts {
		stats.BySeverity[a.Severity]++
		stats.ByType[a.Type]++
		if !a.Read {
			stats.Unread++
		}
	}
	return stats
}

func (s *Store) copyAlerts(alerts []models.Alert) []models.Alert {
	out := make([]models.Alert, len(alerts))
	copy(out, alerts)
	return out
}
