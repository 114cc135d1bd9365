package booking

import (
	"errors"
	"fmt"
)

// ErrSubmissionInFlight is returned when the same form session already has
// a submission running.
var ErrSubmissionInFlight = errors.New("submission already in progress")

// SubmissionError is the single user-facing failure kind for a booking
// submission. Message is safe to show; Err is for logs only.
type SubmissionError struct {
	Code    string
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func NewSubmissionError(phone string, cause error) error {
	return &SubmissionError{
		Code:    "submissionFailed",
		Message: FailureMessage(phone),
		Err:     cause,
	}
}

// FailureMessage is the static retry text shown after any failed submission.
func FailureMessage(phone string) string {
	return fmt.Sprintf("Sorry, there was an error submitting your request. Please try again or call us directly at %s.", phone)
}

// SuccessMessage is shown once both notices went out.
func SuccessMessage(name string) string {
	return fmt.Sprintf("Booking request submitted for %s! We'll contact you within 1 hour to confirm your pickup.", name)
}
