package keepalive

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestPingHitsHealthEndpoint(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := New(slog.Default(), srv.URL, time.Minute, time.Second)
	s.ping()
	if hits.Load() != 1 {
		t.Fatalf("hits = %d, want 1", hits.Load())
	}
}

func TestPingFailureIsAbsorbed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable target

	s := New(slog.Default(), srv.URL, time.Minute, 100*time.Millisecond)
	// Must not panic and must leave the scheduler usable.
	s.ping()
	s.ping()
}

func TestScheduleTicksAndSurvivesFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := hits.Add(1)
		if n == 1 {
			// First tick fails; the schedule must keep running.
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// cron rounds sub-second @every delays up to one second.
	s := New(slog.Default(), srv.URL, time.Second, time.Second)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Stop(ctx)
	}()

	deadline := time.After(5 * time.Second)
	for hits.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("hits = %d, want >= 2 after a failure", hits.Load())
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestStopCancelsSchedule(t *testing.T) {
	t.Parallel()

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	s := New(slog.Default(), srv.URL, time.Second, time.Second)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}

	settled := hits.Load()
	time.Sleep(1200 * time.Millisecond)
	if hits.Load() != settled {
		t.Fatalf("ticks continued after stop: %d -> %d", settled, hits.Load())
	}
}

func TestDisabledWithoutBaseURL(t *testing.T) {
	t.Parallel()

	s := New(slog.Default(), "", time.Minute, time.Second)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestStartTwiceFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	s := New(slog.Default(), srv.URL, time.Minute, time.Second)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Fatal("second start should fail")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.Stop(ctx)
}
