// Package debounce collapses bursts of calls into a single trailing call.
//
// A Debouncer wraps a target function and a quiet period. Every Call cancels
// the pending invocation, if any, and schedules a new one after the quiet
// period with the latest argument. Only the last call of a burst reaches the
// target:
//
//	d := debounce.New(180*time.Millisecond, func(q string) {
//		search(q)
//	})
//	d.Call("a")
//	d.Call("an")
//	d.Call("ann") // search("ann") runs once, 180ms after this call
//
// The target runs on a timer goroutine. Calls may come from any goroutine.
// A panic in the target is recovered; register WithPanicHandler to observe it.
package debounce
