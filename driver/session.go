package driver

import (
	"context"
	"sync"

	"github.com/katalvlaran/algoflow/stepper"
)

// Session is the single owner of the active run of a visualization.
//
// Start disposes of any previous run (cancel, then wait for its goroutine to
// exit) before driving the new stepper, so at most one goroutine ever calls
// Step. Readers use Last rather than touching the stepper directly.
type Session struct {
	opts []Option

	mu         sync.Mutex
	cancel     context.CancelFunc
	done       chan struct{}
	err        error
	last       Snapshot
	generation int
}

// NewSession returns a Session whose runs use opts.
func NewSession(opts ...Option) *Session {
	return &Session{opts: opts}
}

// Start replaces the active run with a new run of s. Returns construction
// errors from New; run errors are reported by Wait.
func (ss *Session) Start(ctx context.Context, s stepper.Stepper) error {
	d, err := New(s, ss.opts...)
	if err != nil {
		return err
	}

	ss.Stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	ss.mu.Lock()
	ss.generation++
	gen := ss.generation
	ss.cancel = cancel
	ss.done = done
	ss.err = nil
	ss.last = Capture(s)
	ss.mu.Unlock()

	d.observe = func(snap Snapshot) {
		ss.mu.Lock()
		if ss.generation == gen {
			ss.last = snap
		}
		ss.mu.Unlock()
	}

	go func() {
		defer close(done)
		runErr := d.Run(runCtx)

		ss.mu.Lock()
		if ss.generation == gen {
			ss.err = runErr
		}
		ss.mu.Unlock()
	}()

	return nil
}

// Stop cancels the active run, if any, and waits for it to exit.
func (ss *Session) Stop() {
	ss.mu.Lock()
	cancel, done := ss.cancel, ss.done
	ss.cancel, ss.done = nil, nil
	ss.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until the active run exits and returns its error. Wait
// returns nil immediately when no run was started.
func (ss *Session) Wait() error {
	ss.mu.Lock()
	done := ss.done
	ss.mu.Unlock()

	if done != nil {
		<-done
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.err
}

// Last returns the most recent snapshot of the active run.
func (ss *Session) Last() Snapshot {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.last
}

// Generation counts the runs started so far.
func (ss *Session) Generation() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	return ss.generation
}
