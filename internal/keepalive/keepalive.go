// Package keepalive issues a periodic self-directed liveness request so
// idle-timeout hosting does not suspend the process.
package keepalive

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler pings the deployment's own health endpoint on a fixed
// period. It runs off the request path and shares nothing mutable with
// the handlers.
type Scheduler struct {
	cron     *cron.Cron
	client   *http.Client
	target   string
	interval time.Duration
	logger   *slog.Logger
}

// New creates a Scheduler targeting baseURL's health endpoint. An empty
// baseURL disables the scheduler.
func New(log *slog.Logger, baseURL string, interval, timeout time.Duration) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	target := ""
	if strings.TrimSpace(baseURL) != "" {
		target = strings.TrimSuffix(strings.TrimSpace(baseURL), "/") + "/health"
	}
	return &Scheduler{
		client:   &http.Client{Timeout: timeout},
		target:   target,
		interval: interval,
		logger:   log.With(slog.String("component", "keepalive")),
	}
}

// Start begins the ping schedule. The first ping fires one interval
// after start, matching the host's idle-timeout purpose: there is no
// need to ping while traffic is flowing.
func (s *Scheduler) Start() error {
	if s.target == "" {
		s.logger.Info("keep-alive disabled: no external base URL configured")
		return nil
	}
	if s.cron != nil {
		return fmt.Errorf("keep-alive already started")
	}
	c := cron.New()
	spec := "@every " + s.interval.String()
	if _, err := c.AddFunc(spec, s.ping); err != nil {
		return fmt.Errorf("keep-alive schedule %q: %w", spec, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("keep-alive started",
		slog.String("target", s.target),
		slog.Duration("interval", s.interval),
	)
	return nil
}

// Stop cancels the schedule and waits for a running ping to finish, up
// to ctx's deadline.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cron == nil {
		return nil
	}
	done := s.cron.Stop().Done()
	s.cron = nil
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ping performs one self-request. Failures are logged and absorbed so
// the schedule keeps running.
func (s *Scheduler) ping() {
	resp, err := s.client.Get(s.target)
	if err != nil {
		s.logger.Warn("self-ping failed", slog.Any("error", err))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("self-ping unexpected status", slog.Int("status", resp.StatusCode))
		return
	}
	s.logger.Debug("self-ping ok", slog.String("target", s.target))
}
