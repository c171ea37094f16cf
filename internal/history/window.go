// Package history keeps the bounded, chronologically ordered window of
// recent sensor readings that trend and rate-of-change detection run over.
package history

import (
	"footsense-monitor/internal/models"
)

// DefaultCapacity is the reference window size (one minute of readings at
// the device's 2-second cadence).
const DefaultCapacity = 30

// Window is a fixed-capacity FIFO of the most recent readings, oldest first.
// It is not internally locked; the owning session serializes access around
// each process-one-reading step.
type Window struct {
	capacity int
	readings []models.SensorReading
}

// NewWindow creates a window with the given capacity. Capacities below one
// fall back to DefaultCapacity.
func NewWindow(capacity int) *Window {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Window{
		capacity: capacity,
		readings: make([]models.SensorReading, 0, capacity),
	}
}

// Push appends a reading to the tail, evicting from the head once the
// window is full. Pushing is total and never fails.
func (w *Window) Push(r models.SensorReading) {
	if len(w.readings) == w.capacity {
		copy(w.readings, w.readings[1:])
		w.readings = w.readings[:w.capacity-1]
	}
	w.readings = append(w.readings, r)
}

// Snapshot returns the window contents in chronological order. The returned
// slice is a copy; callers cannot reach the internal storage through it.
func (w *Window) Snapshot() []models.SensorReading {
	out := make([]models.SensorReading, len(w.readings))
	copy(out, w.readings)
	return out
}

// Len returns the number of readings currently held.
func (w *Window) Len() int {
	return len(w.readings)
}

// Capacity returns the fixed capacity of the window.
func (w *Window) Capacity() int {
	return w.capacity
}
