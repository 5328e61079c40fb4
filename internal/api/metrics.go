package api

import (
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal atomic.Int64
	Responses2xx  atomic.Int64
	Responses4xx  atomic.Int64
	Responses5xx  atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequestsTotal increments the total request counter
func (m *Metrics) IncRequestsTotal() {
	m.RequestsTotal.Add(1)
}

// IncResponses2xx increments the successful response counter
func (m *Metrics) IncResponses2xx() {
	m.Responses2xx.Add(1)
}

// IncResponses4xx increments the client error response counter
func (m *Metrics) IncResponses4xx() {
	m.Responses4xx.Add(1)
}

// IncResponses5xx increments the server error response counter
func (m *Metrics) IncResponses5xx() {
	m.Responses5xx.Add(1)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal int64     `json:"requests_total"`
	Responses2xx  int64     `json:"responses_2xx"`
	Responses4xx  int64     `json:"responses_4xx"`
	Responses5xx  int64     `json:"responses_5xx"`
	StartTime     time.Time `json:"start_time"`
	Uptime        string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal: m.RequestsTotal.Load(),
		Responses2xx:  m.Responses2xx.Load(),
		Responses4xx:  m.Responses4xx.Load(),
		Responses5xx:  m.Responses5xx.Load(),
		StartTime:     m.StartTime,
		Uptime:        time.Since(m.StartTime).String(),
	}
}
