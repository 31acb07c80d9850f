package packlist

import (
	"sync/atomic"
	"time"
)

// Metrics tracks store statistics using atomic operations for thread-safety
type Metrics struct {
	IntentsProcessed   atomic.Int64
	RefreshesApplied   atomic.Int64
	LabelsPublished    atomic.Int64
	EffectsCompleted   atomic.Int64
	EffectFailures     atomic.Int64
	ContractViolations atomic.Int64
	StartTime          time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	IntentsProcessed   int64     `json:"intents_processed"`
	RefreshesApplied   int64     `json:"refreshes_applied"`
	LabelsPublished    int64     `json:"labels_published"`
	EffectsCompleted   int64     `json:"effects_completed"`
	EffectFailures     int64     `json:"effect_failures"`
	ContractViolations int64     `json:"contract_violations"`
	StartTime          time.Time `json:"start_time"`
	Uptime             string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		IntentsProcessed:   m.IntentsProcessed.Load(),
		RefreshesApplied:   m.RefreshesApplied.Load(),
		LabelsPublished:    m.LabelsPublished.Load(),
		EffectsCompleted:   m.EffectsCompleted.Load(),
		EffectFailures:     m.EffectFailures.Load(),
		ContractViolations: m.ContractViolations.Load(),
		StartTime:          m.StartTime,
		Uptime:             time.Since(m.StartTime).String(),
	}
}
