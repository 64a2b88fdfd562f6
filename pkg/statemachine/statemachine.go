package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Guard decides at fire time whether a transition may proceed.
type Guard func(ctx context.Context, data any) bool

// Action runs a side effect during a transition.
type Action[S comparable] func(ctx context.Context, from, to S, data any) error

// TransitionOption configures a transition.
type TransitionOption[S comparable] func(*transition[S])

// WithGuard adds a guard; all guards must pass.
func WithGuard[S comparable](g Guard) TransitionOption[S] {
	return func(t *transition[S]) { t.guards = append(t.guards, g) }
}

// WithAction adds an action executed before the state changes.
func WithAction[S comparable](a Action[S]) TransitionOption[S] {
	return func(t *transition[S]) { t.actions = append(t.actions, a) }
}

type transition[S comparable] struct {
	to      S
	guards  []Guard
	actions []Action[S]
}

func (t *transition[S]) allowed(ctx context.Context, data any) bool {
	for _, g := range t.guards {
		if g != nil && !g(ctx, data) {
			return false
		}
	}
	return true
}

// Machine is safe for concurrent use. Fire calls are serialized, so guards
// and actions observe a stable current state.
type Machine[S, E comparable] struct {
	mu          sync.Mutex
	current     S
	transitions map[S]map[E][]*transition[S]
}

// New creates a machine in the initial state.
func New[S, E comparable](initial S) *Machine[S, E] {
	return &Machine[S, E]{
		current:     initial,
		transitions: make(map[S]map[E][]*transition[S]),
	}
}

// Add registers a transition from -> to on event.
func (m *Machine[S, E]) Add(from S, event E, to S, opts ...TransitionOption[S]) {
	t := &transition[S]{to: to}
	for _, opt := range opts {
		opt(t)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.transitions[from] == nil {
		m.transitions[from] = make(map[E][]*transition[S])
	}
	m.transitions[from][event] = append(m.transitions[from][event], t)
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Fire applies event. It returns a *TransitionError wrapping ErrNoTransition
// or ErrTransitionRejected, or the first action error.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, err := m.pick(ctx, event, data)
	if err != nil {
		return err
	}
	for _, a := range t.actions {
		if a == nil {
			continue
		}
		if err := a(ctx, m.current, t.to, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}
	m.current = t.to
	return nil
}

// CanFire reports whether Fire would find an allowed transition.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, err := m.pick(ctx, event, data)
	return err == nil
}

func (m *Machine[S, E]) pick(ctx context.Context, event E, data any) (*transition[S], error) {
	candidates := m.transitions[m.current][event]
	if len(candidates) == 0 {
		return nil, m.fail(event, ErrNoTransition)
	}
	for _, t := range candidates {
		if t.allowed(ctx, data) {
			return t, nil
		}
	}
	return nil, m.fail(event, ErrTransitionRejected)
}

func (m *Machine[S, E]) fail(event E, err error) error {
	return &TransitionError{
		State: fmt.Sprint(m.current),
		Event: fmt.Sprint(event),
		Err:   err,
	}
}
