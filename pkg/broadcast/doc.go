// Package broadcast fans values out to in-process subscribers.
//
// Publishing never blocks: each subscriber owns a buffered channel, and a
// subscriber whose buffer is full is dropped and its channel closed. Readers
// treat a closed channel as "resynchronize or go away".
//
//	b := broadcast.New[Region](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	b.Publish(RegionCards)
//	for r := range sub.C() {
//		...
//	}
//
// A subscription ends when its context is canceled, Close is called, it
// falls behind, or the broadcaster is closed.
package broadcast
