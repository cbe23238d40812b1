package statefeed

import (
	"testing"

	"aura/internal/uvm"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	f := New()
	defer f.Close()

	a, cancelA := f.Subscribe()
	defer cancelA()
	b, cancelB := f.Subscribe()
	defer cancelB()

	update := uvm.ObjectUpdate{ObjectID: "system", Method: "set_name", Attributes: map[string]any{"name": "Eve"}}
	f.Publish(update)

	for name, ch := range map[string]<-chan uvm.ObjectUpdate{"a": a, "b": b} {
		got := <-ch
		if got.ObjectID != "system" || got.Method != "set_name" {
			t.Fatalf("subscriber %s got %+v", name, got)
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	f := New()
	defer f.Close()

	ch, cancel := f.Subscribe()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatal("canceled subscriber channel should be closed")
	}

	// Publishing after cancel must not panic on the closed channel.
	f.Publish(uvm.ObjectUpdate{ObjectID: "system"})
}

func TestLaggingSubscriberDropsInsteadOfBlocking(t *testing.T) {
	f := New()
	defer f.Close()

	ch, cancel := f.Subscribe()
	defer cancel()

	// Fill the buffer and then some; extra updates are dropped, the
	// publisher never blocks.
	for i := 0; i < subscriberBuffer+8; i++ {
		f.Publish(uvm.ObjectUpdate{ObjectID: "system"})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			if received != subscriberBuffer {
				t.Fatalf("expected %d buffered updates, got %d", subscriberBuffer, received)
			}
			return
		}
	}
}

func TestCloseClosesSubscribers(t *testing.T) {
	f := New()
	ch, cancel := f.Subscribe()
	f.Close()

	if _, ok := <-ch; ok {
		t.Fatal("subscriber channel should be closed after feed close")
	}

	// All of these must be no-ops after close.
	f.Publish(uvm.ObjectUpdate{ObjectID: "system"})
	f.Close()
	cancel()
}

func TestSubscribeAfterClose(t *testing.T) {
	f := New()
	f.Close()

	ch, cancel := f.Subscribe()
	defer cancel()
	if _, ok := <-ch; ok {
		t.Fatal("subscription on a closed feed should yield a closed channel")
	}
}
