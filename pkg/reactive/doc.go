// Package reactive provides the observer substrate for Glaze state
// containers.
//
// The central type is Signal[T], a thread-safe value holder that notifies
// subscribed listeners when its value changes. Subscription is explicit:
// callers register interest with Watch rather than relying on implicit
// dependency tracking.
//
//	snapshots := reactive.NewSignal(initialState)
//
//	stop := reactive.Watch(snapshots, func(s State) {
//	    redraw(s)
//	})
//	defer stop()
//
//	snapshots.Set(nextState) // redraw runs with nextState
//
// Multiple updates can be grouped with Batch so that listeners observe a
// single notification for the whole group:
//
//	reactive.Batch(func() {
//	    first.Set(a)
//	    second.Set(b)
//	})
package reactive
