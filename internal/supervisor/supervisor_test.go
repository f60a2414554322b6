package supervisor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adarsh8081/e-waste-management/internal/service/fallback"
	"github.com/adarsh8081/e-waste-management/internal/service/orchestrator"
	"github.com/adarsh8081/e-waste-management/internal/supervisor"
)

func waitDone(t *testing.T, s *supervisor.Supervisor) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("initialization did not finish")
	}
}

func TestSupervisorReachesReady(t *testing.T) {
	s := supervisor.New(func(ctx context.Context) (*supervisor.Components, error) {
		return &supervisor.Components{
			Orchestrator: orchestrator.New(nil, fallback.NewEngine()),
		}, nil
	})

	if got := s.Status(); got.State != supervisor.NotStarted {
		t.Fatalf("state before Start = %s", got.State)
	}
	if s.Components() != nil {
		t.Fatal("components visible before Start")
	}

	s.Start(context.Background())
	waitDone(t, s)

	if got := s.Status(); got.State != supervisor.Ready {
		t.Fatalf("state after init = %s", got.State)
	}
	components := s.Components()
	if components == nil || components.Orchestrator == nil {
		t.Fatal("components missing after Ready")
	}
}

func TestSupervisorRecordsFailureReason(t *testing.T) {
	s := supervisor.New(func(ctx context.Context) (*supervisor.Components, error) {
		return nil, errors.New("model warm-up rejected")
	})

	s.Start(context.Background())
	waitDone(t, s)

	got := s.Status()
	if got.State != supervisor.Failed {
		t.Fatalf("state after failed init = %s", got.State)
	}
	if got.Reason != "model warm-up rejected" {
		t.Fatalf("failure reason = %q", got.Reason)
	}
	if s.Components() != nil {
		t.Fatal("components visible after failure")
	}
}

func TestSupervisorStartIsIdempotent(t *testing.T) {
	runs := 0
	s := supervisor.New(func(ctx context.Context) (*supervisor.Components, error) {
		runs++
		return &supervisor.Components{
			Orchestrator: orchestrator.New(nil, fallback.NewEngine()),
		}, nil
	})

	for i := 0; i < 3; i++ {
		s.Start(context.Background())
	}
	waitDone(t, s)

	if runs != 1 {
		t.Fatalf("init ran %d times", runs)
	}
	if got := s.Status(); got.State != supervisor.Ready {
		t.Fatalf("state = %s", got.State)
	}
}

func TestSupervisorStatusDuringInitialization(t *testing.T) {
	release := make(chan struct{})
	s := supervisor.New(func(ctx context.Context) (*supervisor.Components, error) {
		<-release
		return &supervisor.Components{
			Orchestrator: orchestrator.New(nil, fallback.NewEngine()),
		}, nil
	})

	s.Start(context.Background())

	if got := s.Status(); got.State != supervisor.Initializing {
		t.Fatalf("state while initializing = %s", got.State)
	}
	if s.Components() != nil {
		t.Fatal("components visible while initializing")
	}

	close(release)
	waitDone(t, s)

	if got := s.Status(); got.State != supervisor.Ready {
		t.Fatalf("state after release = %s", got.State)
	}
}

func TestStateString(t *testing.T) {
	cases := map[supervisor.State]string{
		supervisor.NotStarted:   "not_started",
		supervisor.Initializing: "initializing",
		supervisor.Ready:        "ready",
		supervisor.Failed:       "failed",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
