package reactive

import "sync/atomic"

// watcher adapts a plain callback to the Listener interface.
type watcher[T any] struct {
	id      uint64
	sig     *Signal[T]
	fn      func(T)
	stopped atomic.Bool
}

// MarkDirty implements Listener. It reads the signal's current value and
// invokes the callback synchronously.
func (w *watcher[T]) MarkDirty() {
	if w.stopped.Load() {
		return
	}
	w.fn(w.sig.Get())
}

// ID implements Listener.
func (w *watcher[T]) ID() uint64 {
	return w.id
}

// Watch subscribes fn to value changes on the signal. The callback receives
// the value current at notification time; under Batch it runs once with the
// final value of the batch.
//
// The returned stop function removes the subscription. It is safe to call
// more than once.
func Watch[T any](s *Signal[T], fn func(T)) (stop func()) {
	w := &watcher[T]{
		id:  nextID(),
		sig: s,
		fn:  fn,
	}
	s.base.subscribe(w)

	return func() {
		if w.stopped.Swap(true) {
			return
		}
		s.base.unsubscribe(w)
	}
}
