package analytics

import (
	"sync"
	"time"
)

// DefaultAbandonDelay is how long the page must stay hidden before the
// shopper counts as having abandoned the cart.
const DefaultAbandonDelay = 30 * time.Second

// Watcher turns page visibility and lifecycle signals into
// cart_abandonment emissions. It owns the single delayed check: at most
// one timer is outstanding at a time, and returning to the page cancels
// it.
type Watcher struct {
	mu      sync.Mutex
	emitter *Emitter
	cart    CartProvider
	delay   time.Duration
	timer   *time.Timer
}

type WatcherOption func(*Watcher)

// WithDelay overrides the abandonment delay.
func WithDelay(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.delay = d
	}
}

func NewWatcher(emitter *Emitter, cart CartProvider, options ...WatcherOption) *Watcher {
	w := &Watcher{
		emitter: emitter,
		cart:    cart,
		delay:   DefaultAbandonDelay,
	}

	for _, opt := range options {
		opt(w)
	}

	return w
}

// Hidden arms the delayed abandonment check. Nothing is armed when the
// cart is empty, and an already armed timer is left running.
func (w *Watcher) Hidden() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.cart.Lines()) == 0 {
		return
	}
	if w.timer != nil {
		return
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
}

// Visible cancels any pending abandonment check.
func (w *Watcher) Visible() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopLocked()
}

// Unload reports the page going away. Any pending timer is dropped and,
// if the cart still has items, the abandonment event is emitted
// immediately.
func (w *Watcher) Unload() {
	w.mu.Lock()
	w.stopLocked()
	w.mu.Unlock()

	w.emitter.CartAbandonment()
}

func (w *Watcher) fire() {
	w.mu.Lock()
	w.timer = nil
	w.mu.Unlock()

	// The cart may have been emptied while the timer was pending, e.g. by
	// a completed checkout; CartAbandonment re-checks before emitting.
	w.emitter.CartAbandonment()
}

func (w *Watcher) stopLocked() {
	if w.timer == nil {
		return
	}
	w.timer.Stop()
	w.timer = nil
}
