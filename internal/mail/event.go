package mail

import (
	"context"

	"github.com/Fortis-Ledger/Career-Portal/internal/domain/application"
)

type EventKind string

const (
	EventApplicationReceived     EventKind = "application_received"
	EventApplicationStatusUpdate EventKind = "application_status_update"
	EventNewApplication          EventKind = "new_application_notification"
	EventCustom                  EventKind = "custom"
)

// Event is the ephemeral dispatch request. Nothing about it is persisted;
// it lives for the duration of one Send call.
type Event struct {
	Kind          EventKind
	To            string
	ApplicantName string
	JobTitle      string
	CompanyName   string
	// Status is set for EventApplicationStatusUpdate only.
	Status application.Status
	// Subject and Message are set for EventCustom only.
	Subject string
	Message string
}

// Mailer is what the services depend on. Send reports whether the event
// was transmitted; the only error it returns is the configuration error
// for "no usable provider" — individual provider failures are logged and
// reported as false.
type Mailer interface {
	Send(ctx context.Context, event Event) (bool, error)
}
