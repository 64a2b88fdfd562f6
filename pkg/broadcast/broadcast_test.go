package broadcast_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userdir/pkg/broadcast"
)

func drained(t *testing.T, ch <-chan int) bool {
	t.Helper()
	select {
	case _, ok := <-ch:
		return !ok
	case <-time.After(time.Second):
		return false
	}
}

func TestPublishFansOut(t *testing.T) {
	t.Parallel()

	b := broadcast.New[int](4)
	defer b.Close()

	a := b.Subscribe(context.Background())
	c := b.Subscribe(context.Background())

	assert.Equal(t, 2, b.Publish(7))
	assert.Equal(t, 7, <-a.C())
	assert.Equal(t, 7, <-c.C())
}

func TestSlowSubscriberIsDropped(t *testing.T) {
	t.Parallel()

	b := broadcast.New[int](1)
	defer b.Close()

	sub := b.Subscribe(context.Background())
	assert.Equal(t, 1, b.Publish(1))
	assert.Equal(t, 0, b.Publish(2))
	assert.Equal(t, 0, b.Len())

	v, ok := <-sub.C()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, drained(t, sub.C()))
}

func TestContextCancelEndsSubscription(t *testing.T) {
	t.Parallel()

	b := broadcast.New[int](1)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)
	cancel()

	assert.True(t, drained(t, sub.C()))
	assert.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	b := broadcast.New[int](1)
	sub := b.Subscribe(context.Background())
	sub.Close()
	sub.Close()
	assert.True(t, drained(t, sub.C()))

	other := b.Subscribe(context.Background())
	b.Close()
	b.Close()
	assert.True(t, drained(t, other.C()))

	late := b.Subscribe(context.Background())
	assert.True(t, drained(t, late.C()))
	assert.Equal(t, 0, b.Publish(1))
}

func TestConcurrentPublishAndSubscribe(t *testing.T) {
	t.Parallel()

	b := broadcast.New[int](64)
	defer b.Close()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
			defer cancel()
			sub := b.Subscribe(ctx)
			for range sub.C() {
			}
		}()
		go func() {
			defer wg.Done()
			for j := range 50 {
				b.Publish(i*100 + j)
			}
		}()
	}
	wg.Wait()
}
