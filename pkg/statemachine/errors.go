package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrNoTransition       = errors.New("no transition available")
	ErrTransitionRejected = errors.New("transition rejected by guards")
)

// TransitionError describes a failed Fire call and unwraps to one of the
// sentinel errors.
type TransitionError struct {
	State string
	Event string
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: state %q, event %q", e.Err, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
