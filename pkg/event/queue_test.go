package event

import (
	"testing"
)

func TestNew_Attributes(t *testing.T) {
	type payload struct {
		Cause string `json:"cause"`
	}

	evt := New(TypeTerminationRequested, DefaultSource, payload{Cause: "UserInterrupt"})

	if evt.Type() != TypeTerminationRequested {
		t.Errorf("type = %q, want %q", evt.Type(), TypeTerminationRequested)
	}
	if evt.Source() != DefaultSource {
		t.Errorf("source = %q, want %q", evt.Source(), DefaultSource)
	}
	if evt.ID() == "" {
		t.Error("event has no id")
	}
	if evt.Time().IsZero() {
		t.Error("event has no timestamp")
	}
	if err := evt.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	var got payload
	if err := evt.DataAs(&got); err != nil {
		t.Fatalf("DataAs: %v", err)
	}
	if got.Cause != "UserInterrupt" {
		t.Errorf("payload cause = %q, want UserInterrupt", got.Cause)
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(TypeTerminationRequested, DefaultSource, nil)
	b := New(TypeTerminationRequested, DefaultSource, nil)
	if a.ID() == b.ID() {
		t.Error("two events share an id")
	}
}

func TestQueue_PostAndReceive(t *testing.T) {
	q := NewQueue(2)

	if !q.Post(New(TypeTerminationRequested, DefaultSource, nil)) {
		t.Fatal("post into empty queue rejected")
	}

	select {
	case evt := <-q.Events():
		if evt.Type() != TypeTerminationRequested {
			t.Errorf("received type = %q", evt.Type())
		}
	default:
		t.Fatal("posted event not receivable")
	}
}

func TestQueue_PostNeverBlocks(t *testing.T) {
	q := NewQueue(1)

	if !q.Post(New(TypeTerminationRequested, DefaultSource, nil)) {
		t.Fatal("first post rejected")
	}
	if q.Post(New(TypeTerminationRequested, DefaultSource, nil)) {
		t.Fatal("post into full queue accepted")
	}
	if got := q.Dropped(); got != 1 {
		t.Errorf("dropped = %d, want 1", got)
	}

	// Draining makes room again.
	<-q.Events()
	if !q.Post(New(TypeTerminationRequested, DefaultSource, nil)) {
		t.Error("post after drain rejected")
	}
}

func TestNewQueue_DefaultSize(t *testing.T) {
	q := NewQueue(0)
	if cap(q.ch) != DefaultQueueSize {
		t.Errorf("cap = %d, want %d", cap(q.ch), DefaultQueueSize)
	}
}
