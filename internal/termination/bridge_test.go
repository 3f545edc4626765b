package termination

import (
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/ferrolite/mainline/internal/config"
	"github.com/ferrolite/mainline/pkg/event"
	"github.com/ferrolite/mainline/pkg/log"
)

func decodePayload(t *testing.T, evt cloudevents.Event) Payload {
	t.Helper()
	if evt.Type() != event.TypeTerminationRequested {
		t.Fatalf("event type = %q, want %q", evt.Type(), event.TypeTerminationRequested)
	}
	var p Payload
	if err := evt.DataAs(&p); err != nil {
		t.Fatalf("DataAs: %v", err)
	}
	return p
}

func TestBridge_RequestClose(t *testing.T) {
	q := event.NewQueue(4)
	b := New(q, config.NewStore(), log.NewNoopLogger())

	b.RequestClose()

	select {
	case evt := <-q.Events():
		p := decodePayload(t, evt)
		if p.Cause != CauseApplicationClose.String() {
			t.Errorf("cause = %q, want ApplicationClose", p.Cause)
		}
		if p.MustDefer {
			t.Error("ApplicationClose must not request deferral")
		}
	default:
		t.Fatal("no event posted")
	}
}

func TestBridge_NotifyWillTerminate(t *testing.T) {
	q := event.NewQueue(4)
	b := New(q, config.NewStore(), log.NewNoopLogger())

	b.NotifyWillTerminate()

	select {
	case evt := <-q.Events():
		p := decodePayload(t, evt)
		if p.Cause != CauseSystemShutdown.String() {
			t.Errorf("cause = %q, want SystemShutdown", p.Cause)
		}
		if !p.MustDefer {
			t.Error("will-terminate must request deferral")
		}
		if p.Native != "will-terminate" {
			t.Errorf("native = %q, want %q", p.Native, "will-terminate")
		}
	default:
		t.Fatal("no event posted")
	}
}

func TestBridge_PostNeverBlocks(t *testing.T) {
	q := event.NewQueue(1)
	b := New(q, config.NewStore(), log.NewNoopLogger())

	// Second post finds the buffer full and must drop, not block.
	b.RequestClose()
	b.RequestClose()

	if got := q.Dropped(); got != 1 {
		t.Errorf("dropped = %d, want 1", got)
	}
}
