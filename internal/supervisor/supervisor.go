// Package supervisor brings up the slow, failure-prone subsystems (generative
// client, classifier warm-up) off the request path and gates traffic until
// they are ready. State moves strictly forward: NotStarted → Initializing →
// Ready or Failed; a failed initialization is terminal until the process
// restarts.
package supervisor

import (
	"context"
	"log"
	"sync"

	"github.com/adarsh8081/e-waste-management/internal/service/classify"
	"github.com/adarsh8081/e-waste-management/internal/service/orchestrator"
)

// State is the readiness phase.
type State int

const (
	NotStarted State = iota
	Initializing
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status pairs the state with the failure reason, set only when Failed.
type Status struct {
	State  State
	Reason string
}

// Components holds everything initialization produces. Request handlers may
// only touch it after Status reports Ready.
type Components struct {
	Orchestrator *orchestrator.Orchestrator
	Classifier   classify.Classifier
}

// InitFunc performs the heavy lifting. It runs exactly once, in its own
// goroutine.
type InitFunc func(ctx context.Context) (*Components, error)

// Supervisor is the single writer of the readiness state; any number of
// goroutines may read it.
type Supervisor struct {
	initFn InitFunc
	once   sync.Once
	done   chan struct{}

	mu         sync.RWMutex
	status     Status
	components *Components
}

// New wraps initFn in a supervisor. Nothing runs until Start.
func New(initFn InitFunc) *Supervisor {
	return &Supervisor{
		initFn: initFn,
		done:   make(chan struct{}),
		status: Status{State: NotStarted},
	}
}

// Start launches initialization exactly once; later calls are no-ops.
func (s *Supervisor) Start(ctx context.Context) {
	s.once.Do(func() {
		s.setStatus(Status{State: Initializing}, nil)
		go s.run(ctx)
	})
}

func (s *Supervisor) run(ctx context.Context) {
	defer close(s.done)

	components, err := s.initFn(ctx)
	if err != nil {
		log.Printf("[supervisor] initialization failed: %v", err)
		s.setStatus(Status{State: Failed, Reason: err.Error()}, nil)
		return
	}

	log.Printf("[supervisor] components initialized successfully")
	s.setStatus(Status{State: Ready}, components)
}

func (s *Supervisor) setStatus(status Status, components *Components) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	if components != nil {
		s.components = components
	}
}

// Status returns the current readiness state without blocking on
// initialization.
func (s *Supervisor) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Components returns the initialized subsystems, or nil before Ready.
func (s *Supervisor) Components() *Components {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status.State != Ready {
		return nil
	}
	return s.components
}

// Done is closed once initialization has finished, in either direction.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}
