// Package statemachine implements a small, thread-safe finite state machine
// over comparable state and event types.
//
// Transitions are registered per (state, event) pair. When several are
// registered for the same pair the first whose guards all pass wins, which
// allows guard-based branching:
//
//	m := statemachine.New[State, Event](Idle)
//	m.Add(Idle, Started, Loading, statemachine.WithAction(showSpinner))
//	m.Add(Loading, Settled, Idle, statemachine.WithGuard(noneInFlight))
//	m.Add(Loading, Settled, Loading)
//
//	err := m.Fire(ctx, Settled, nil)
//
// CanFire evaluates the same lookup and guards without changing state, so a
// caller can skip events that have no effect instead of registering
// self-loops for them.
//
// Actions run before the state changes, in order; an action error aborts
// the transition.
package statemachine
