// Package healthcheck provides the health endpoint payload and probes.
package healthcheck

import (
	"context"
	"sync"
	"time"
)

// Status is the reported state of a single probe.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// Probe checks one dependency (database, cache, ...).
type Probe func(ctx context.Context) error

// Report is the health endpoint response body.
type Report struct {
	Status    Status            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Checker runs registered probes and aggregates a Report.
type Checker struct {
	version string
	mu      sync.RWMutex
	probes  map[string]Probe
}

// NewChecker creates a checker reporting the given application version.
func NewChecker(version string) *Checker {
	return &Checker{
		version: version,
		probes:  make(map[string]Probe),
	}
}

// Register adds a named probe. Registering the same name replaces the probe.
func (c *Checker) Register(name string, probe Probe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probes[name] = probe
}

// Check runs all probes and returns the aggregated report.
// A single failing probe degrades the overall status to unhealthy.
func (c *Checker) Check(ctx context.Context) Report {
	c.mu.RLock()
	defer c.mu.RUnlock()

	report := Report{
		Status:    StatusHealthy,
		Version:   c.version,
		Timestamp: time.Now().UTC(),
	}

	if len(c.probes) == 0 {
		return report
	}

	report.Checks = make(map[string]string, len(c.probes))
	for name, probe := range c.probes {
		if err := probe(ctx); err != nil {
			report.Status = StatusUnhealthy
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = "ok"
	}

	return report
}
