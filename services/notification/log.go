package notification

import (
	"context"
	"errors"

	"timeback/models"

	"go.uber.org/zap"
)

// LogDispatcher records notices in the log instead of sending them.
type LogDispatcher struct {
	logger *zap.Logger
}

func NewLogDispatcher(logger *zap.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger.With(zap.String("component", "notification"))}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, notice Notice, payload models.Payload) error {
	d.logger.Info("booking notice",
		zap.Stringer("notice", notice),
		zap.String("orderId", payload.OrderID),
		zap.String("email", payload.Email),
		zap.String("serviceDate", payload.ServiceDate),
	)
	return nil
}

// ErrProviderFailure is what FailDispatcher returns.
var ErrProviderFailure = errors.New("provider failure")

// FailDispatcher rejects every notice.
type FailDispatcher struct{}

func (FailDispatcher) Dispatch(ctx context.Context, notice Notice, payload models.Payload) error {
	return ErrProviderFailure
}
