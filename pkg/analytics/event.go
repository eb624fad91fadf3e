package analytics

import (
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formctl/pkg/model"
)

// EventFormSubmit is the event name pushed on successful submission.
const EventFormSubmit = "form_submit"

// Event is one queue entry. Only Event, FormName and FormData are part of the
// wire shape; ID and PushedAt are kept for diagnostics.
type Event struct {
	ID       uuid.UUID    `json:"-"`
	PushedAt time.Time    `json:"-"`
	Event    string       `json:"event"`
	FormName string       `json:"form_name"`
	FormData model.Record `json:"form_data"`
}

// NewEvent builds a form_submit event for rec.
func NewEvent(formName string, rec model.Record) Event {
	return Event{
		ID:       uuid.New(),
		Event:    EventFormSubmit,
		FormName: formName,
		FormData: rec.Clone(),
	}
}
