package analytics

import "sync"

// Sink accepts dataLayer entries. Emitters depend on this capability
// instead of a package-level queue so tests can substitute an in-memory
// collector and disabled analytics can substitute NopSink.
type Sink interface {
	// Push appends entries in order. Entries passed in one call stay
	// adjacent: the reset marker and the event it clears for must never be
	// interleaved with another emission.
	Push(entries ...Envelope)
}

// Queue is the process-wide append-only dataLayer. The storefront only
// ever appends; the queue is drained by the external tag-management
// runtime, which is order-sensitive, so entries are kept strictly FIFO.
type Queue struct {
	mu      sync.Mutex
	entries []Envelope
}

func NewQueue() *Queue {
	return &Queue{entries: []Envelope{}}
}

func (q *Queue) Push(entries ...Envelope) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, entries...)
}

// Entries returns a snapshot of the queue without consuming it.
func (q *Queue) Entries() []Envelope {
	q.mu.Lock()
	defer q.mu.Unlock()
	snapshot := make([]Envelope, len(q.entries))
	copy(snapshot, q.entries)
	return snapshot
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Drain removes and returns all queued entries in push order. Only the
// external consumer endpoint calls this; the emission core never reads
// back what it pushed.
func (q *Queue) Drain() []Envelope {
	q.mu.Lock()
	defer q.mu.Unlock()
	drained := q.entries
	q.entries = []Envelope{}
	return drained
}

// NopSink discards every entry. It stands in for the queue when analytics
// is disabled so callers never have to check whether emission is wired.
type NopSink struct{}

func (NopSink) Push(...Envelope) {}
