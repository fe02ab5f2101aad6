// Package resource manages shared process resources for the engine: how many
// searches may run at once and how often progress telemetry may be emitted.
package resource

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrentSearches bounds how many engine searches may run at the
	// same time. If 0, defaults to 1.
	MaxConcurrentSearches int64

	// ProgressInterval is the minimum spacing between progress lines.
	// If 0, progress output is unlimited.
	ProgressInterval time.Duration
}

// Controller hands out search slots and throttles progress output. A nil
// Controller imposes no limits.
type Controller struct {
	searchSem       *semaphore.Weighted
	progressLimiter *rate.Limiter
}

// NewController creates a controller from cfg.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentSearches <= 0 {
		cfg.MaxConcurrentSearches = 1
	}

	c := &Controller{
		searchSem: semaphore.NewWeighted(cfg.MaxConcurrentSearches),
	}

	if cfg.ProgressInterval > 0 {
		c.progressLimiter = rate.NewLimiter(rate.Every(cfg.ProgressInterval), 1)
	}

	return c
}

// AcquireSearch reserves a search slot, blocking until one is free or ctx is
// done.
func (c *Controller) AcquireSearch(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.searchSem.Acquire(ctx, 1)
}

// ReleaseSearch releases a search slot.
func (c *Controller) ReleaseSearch() {
	if c == nil {
		return
	}
	c.searchSem.Release(1)
}

// AllowProgress reports whether a progress line may be emitted now.
func (c *Controller) AllowProgress() bool {
	if c == nil || c.progressLimiter == nil {
		return true
	}
	return c.progressLimiter.Allow()
}
