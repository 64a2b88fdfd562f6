package debounce

import (
	"sync"
	"time"

	"github.com/sourcegraph/conc/panics"
)

// DefaultWait is the quiet period used when New receives a non-positive duration.
const DefaultWait = 200 * time.Millisecond

// Option configures a Debouncer.
type Option func(*options)

type options struct {
	onPanic func(error)
}

// WithPanicHandler registers a callback for panics raised by the target.
// Nil handlers are ignored.
func WithPanicHandler(fn func(error)) Option {
	return func(o *options) {
		if fn != nil {
			o.onPanic = fn
		}
	}
}

// Debouncer delays calls to a target until no new call arrived for the
// quiet period. The zero value is not usable; create one with New.
type Debouncer[T any] struct {
	wait time.Duration
	fn   func(T)
	opts options

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	gen     uint64
}

// New returns a Debouncer that calls fn with the most recent argument once
// wait has elapsed without another Call.
func New[T any](wait time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	if fn == nil {
		panic("debounce: nil target function")
	}
	if wait <= 0 {
		wait = DefaultWait
	}
	d := &Debouncer[T]{wait: wait, fn: fn}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Call supersedes any pending invocation and schedules fn(arg).
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = arg
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Cancel drops the pending invocation. It reports whether one was pending.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	var zero T
	d.pending = zero
	return true
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// A timer can fire while Call is replacing it; Stop then returns false
	// and the generation check is what keeps the superseded call out.
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	arg := d.pending
	var zero T
	d.pending = zero
	d.timer = nil
	d.mu.Unlock()

	var pc panics.Catcher
	pc.Try(func() { d.fn(arg) })
	if r := pc.Recovered(); r != nil && d.opts.onPanic != nil {
		d.opts.onPanic(r.AsError())
	}
}
