// Package event provides the event collaborator for the lifecycle core.
//
// Events use the CloudEvents format for interoperability with whatever
// delivery subsystem the host application feeds them into. The package
// also provides Queue, a bounded in-process sink whose Post is safe to
// call from signal-dispatch goroutines.
package event

import (
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// Event types produced by the lifecycle core.
const (
	// TypeTerminationRequested signals that the OS (or the application
	// itself) asked the process to end.
	TypeTerminationRequested = "io.ferrolite.mainline.termination.requested"
)

// DefaultSource is the CloudEvents source attribute used for events
// produced by this module.
const DefaultSource = "ferrolite/mainline"

// New creates a CloudEvent with the given type, source and JSON payload.
func New(eventType, source string, data interface{}) cloudevents.Event {
	evt := cloudevents.NewEvent()
	evt.SetID(newEventID())
	evt.SetSource(source)
	evt.SetType(eventType)
	evt.SetTime(time.Now())
	evt.SetSpecVersion(cloudevents.VersionV1)
	if data != nil {
		_ = evt.SetData(cloudevents.ApplicationJSON, data)
	}
	return evt
}

// newEventID generates a time-ordered unique identifier (UUIDv7, with a
// v4 fallback if the clock source misbehaves).
func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
