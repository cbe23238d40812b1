// Package statefeed fans post-mutation object documents out to live
// subscribers (the UI bridge). Delivery is best effort and never
// transactional with the dispatch that produced the update.
package statefeed

import (
	"log"
	"sync"

	"aura/internal/uvm"
)

const subscriberBuffer = 32

// Feed is an in-process publish/subscribe hub for object updates.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan uvm.ObjectUpdate
	closed bool
}

func New() *Feed {
	return &Feed{subs: make(map[int]chan uvm.ObjectUpdate)}
}

// Publish delivers an update to every subscriber. A subscriber whose
// buffer is full has the update dropped rather than blocking the dispatch
// path.
func (f *Feed) Publish(update uvm.ObjectUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	for id, ch := range f.subs {
		select {
		case ch <- update:
		default:
			log.Printf("statefeed: subscriber %d lagging, update dropped", id)
		}
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called when the subscriber goes away; it closes the channel.
func (f *Feed) Subscribe() (<-chan uvm.ObjectUpdate, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan uvm.ObjectUpdate, subscriberBuffer)
	if f.closed {
		close(ch)
		return ch, func() {}
	}
	id := f.nextID
	f.nextID++
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Close shuts the feed down and closes all subscriber channels.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}
