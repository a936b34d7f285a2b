// Package web renders the platform's status page.
package web

import (
	"context"
	"sync"
)

// State is the connection state shown by the page.
type State int

const (
	StateChecking State = iota
	StateConnected
	StateNotConnected
)

// StatusPrefix precedes every rendered state.
const StatusPrefix = "Aptos Connection Status: "

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateNotConnected:
		return "not_connected"
	default:
		return "checking"
	}
}

// Label is the human-readable form used in the status line.
func (s State) Label() string {
	switch s {
	case StateConnected:
		return "Connected"
	case StateNotConnected:
		return "Not Connected"
	default:
		return "Checking..."
	}
}

// ConnectionChecker reports whether the node is reachable.
type ConnectionChecker interface {
	Connected(ctx context.Context) bool
}

// StatusView holds the page's connection state. Mount starts the single
// probe; the state moves from Checking to Connected or NotConnected once
// and never changes again.
type StatusView struct {
	checker ConnectionChecker

	mu        sync.RWMutex
	state     State
	mounted   bool
	unmounted bool

	done chan struct{}
}

// NewStatusView creates an unmounted view in the Checking state.
func NewStatusView(checker ConnectionChecker) *StatusView {
	return &StatusView{
		checker: checker,
		state:   StateChecking,
		done:    make(chan struct{}),
	}
}

// Mount spawns the probe. Only the first call has any effect. The probe is
// not cancelled by Unmount; its result is discarded instead.
func (v *StatusView) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.mounted || v.unmounted {
		v.mu.Unlock()
		return
	}
	v.mounted = true
	v.mu.Unlock()

	go func() {
		defer close(v.done)
		connected := v.checker.Connected(context.WithoutCancel(ctx))

		v.mu.Lock()
		defer v.mu.Unlock()
		if v.unmounted {
			return
		}
		if connected {
			v.state = StateConnected
		} else {
			v.state = StateNotConnected
		}
	}()
}

// Unmount detaches the view; a probe still in flight will not update it.
func (v *StatusView) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unmounted = true
}

// Done is closed once the probe result has been applied or discarded.
// It never closes for a view that was not mounted.
func (v *StatusView) Done() <-chan struct{} {
	return v.done
}

// State returns the current state.
func (v *StatusView) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Text returns the rendered status line.
func (v *StatusView) Text() string {
	return StatusPrefix + v.State().Label()
}
