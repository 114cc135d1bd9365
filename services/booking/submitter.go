package booking

import (
	"context"

	"timeback/models"
	"timeback/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSubmitter implements BookingSubmitter. Each submit dispatches the
// new-order notice, then the confirmation notice, strictly in that order.
type DefaultSubmitter struct {
	Dispatcher    notification.Dispatcher
	Guard         InFlightGuard
	IDs           IDGenerator
	FallbackPhone string
	Logger        *zap.Logger
}

func (s *DefaultSubmitter) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Submit runs the booking pipeline for session. On success the form is
// cleared and OrderID set; on any failure the form is left untouched and a
// *SubmissionError is returned. A concurrent submit for the same session
// returns ErrSubmissionInFlight without dispatching anything.
func (s *DefaultSubmitter) Submit(ctx context.Context, session *FormSession) error {
	logger := s.logger()
	key := session.ID
	if key == "" {
		key = uuid.NewString()
	}

	token, acquired, err := s.Guard.Acquire(ctx, key)
	if err != nil {
		logger.Error("Submit: in-flight guard unavailable", zap.String("session", key), zap.Error(err))
		return s.fail(session, err)
	}
	if !acquired {
		logger.Warn("Submit: submission already in flight", zap.String("session", key))
		return ErrSubmissionInFlight
	}
	defer func() {
		if err := s.Guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
			logger.Warn("Submit: failed to release in-flight guard", zap.String("session", key), zap.Error(err))
		}
	}()

	session.State = StateSubmitting

	orderID, err := s.IDs.Next()
	if err != nil {
		logger.Error("Submit: confirmation number generation failed", zap.Error(err))
		return s.fail(session, err)
	}
	payload := BuildPayload(session.Form, orderID)
	logger = logger.With(zap.String("orderId", orderID))

	if err := s.Dispatcher.Dispatch(ctx, notification.NoticeNewOrder, payload); err != nil {
		logger.Error("Submit: new order email failed", zap.Error(err))
		return s.fail(session, err)
	}
	logger.Info("Submit: new order email sent")

	// The operator already has the order at this point; a failed customer
	// confirmation is still reported to the user as a failed submission.
	if err := s.Dispatcher.Dispatch(ctx, notification.NoticeConfirmation, payload); err != nil {
		logger.Error("Submit: confirmation email failed", zap.Error(err))
		return s.fail(session, err)
	}
	logger.Info("Submit: confirmation email sent")

	session.Form = models.BookingForm{}
	session.OrderID = orderID
	session.State = StateSubmitted
	session.Message = SuccessMessage(payload.Name)
	return nil
}

func (s *DefaultSubmitter) fail(session *FormSession, cause error) error {
	session.State = StateFailed
	session.Message = FailureMessage(s.FallbackPhone)
	return NewSubmissionError(s.FallbackPhone, cause)
}
