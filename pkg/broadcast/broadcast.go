package broadcast

import (
	"context"
	"sync"
)

// Subscription receives published values on C.
type Subscription[T any] struct {
	ch     chan T
	once   sync.Once
	cancel func()
}

// C returns the receive channel. It is closed when the subscription ends.
func (s *Subscription[T]) C() <-chan T {
	return s.ch
}

// Close ends the subscription. Safe to call more than once.
func (s *Subscription[T]) Close() {
	s.cancel()
}

// Broadcaster is safe for concurrent use.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[*Subscription[T]]struct{}
	buffer int
	closed bool
}

// New creates a Broadcaster whose subscribers buffer up to buffer values.
// The minimum buffer is 1.
func New[T any](buffer int) *Broadcaster[T] {
	return &Broadcaster[T]{
		subs:   make(map[*Subscription[T]]struct{}),
		buffer: max(buffer, 1),
	}
}

// Subscribe registers a subscriber that lives until ctx is done or Close is
// called. After the broadcaster is closed it returns an ended subscription.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) *Subscription[T] {
	sub := &Subscription[T]{ch: make(chan T, b.buffer)}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		sub.cancel = func() {}
		sub.end()
		return sub
	}

	b.subs[sub] = struct{}{}
	stop := context.AfterFunc(ctx, func() { b.remove(sub) })
	sub.cancel = func() {
		stop()
		b.remove(sub)
	}
	return sub
}

// Publish delivers v to every subscriber without blocking and returns the
// number that received it. Subscribers with a full buffer are dropped.
func (b *Broadcaster[T]) Publish(v T) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	delivered := 0
	for sub := range b.subs {
		select {
		case sub.ch <- v:
			delivered++
		default:
			delete(b.subs, sub)
			sub.end()
		}
	}
	return delivered
}

// Len reports the number of live subscribers.
func (b *Broadcaster[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close ends every subscription. Later Publish calls deliver nothing.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		sub.end()
	}
	clear(b.subs)
}

func (b *Broadcaster[T]) remove(sub *Subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		sub.end()
	}
}

// end closes the channel; callers hold the broadcaster lock or own sub exclusively.
func (s *Subscription[T]) end() {
	s.once.Do(func() { close(s.ch) })
}
