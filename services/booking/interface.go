package booking

import (
	"context"

	"timeback/models"
)

// State is where a form session sits in the submit flow.
type State string

const (
	StateEditing    State = "editing"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
	StateFailed     State = "failed"
)

// FormSession is one browser's booking form plus its submit state.
// OrderID is only set after a successful submit, for the thank-you view.
type FormSession struct {
	ID      string
	Form    models.BookingForm
	State   State
	OrderID string
	Message string
}

// NewFormSession wraps a posted form in an editing session.
func NewFormSession(id string, form models.BookingForm) *FormSession {
	return &FormSession{ID: id, Form: form, State: StateEditing}
}

func (s *FormSession) Submitted() bool {
	return s.State == StateSubmitted
}

// BookingSubmitter turns a validated form into the operator and customer notices.
type BookingSubmitter interface {
	Submit(ctx context.Context, session *FormSession) error
}

// IDGenerator yields confirmation numbers.
type IDGenerator interface {
	Next() (string, error)
}
