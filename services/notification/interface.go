package notification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"timeback/models"

	"go.uber.org/zap"
)

// Notice identifies which of the two booking emails is being sent.
type Notice int

const (
	// NoticeNewOrder goes to the business owner.
	NoticeNewOrder Notice = iota
	// NoticeConfirmation goes to the customer.
	NoticeConfirmation
)

func (n Notice) String() string {
	switch n {
	case NoticeNewOrder:
		return "newOrder"
	case NoticeConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("notice(%d)", int(n))
	}
}

// Dispatcher delivers one booking notice through an email-delivery service.
type Dispatcher interface {
	Dispatch(ctx context.Context, notice Notice, payload models.Payload) error
}

// Options selects and configures a Dispatcher.
type Options struct {
	Provider string // emailjs, relay, log or fail
	EmailJS  EmailJSConfig
	RelayURL string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// NewDispatcher builds the dispatcher named by opts.Provider.
func NewDispatcher(opts Options) (Dispatcher, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	client := &http.Client{Timeout: opts.Timeout}
	if opts.Timeout <= 0 {
		client.Timeout = 10 * time.Second
	}

	switch opts.Provider {
	case "", "log", "stub":
		return NewLogDispatcher(logger), nil
	case "fail":
		return FailDispatcher{}, nil
	case "emailjs":
		return NewEmailJSDispatcher(opts.EmailJS, client)
	case "relay":
		return NewRelayDispatcher(opts.RelayURL, client)
	default:
		return nil, fmt.Errorf("notification: unknown email provider %q", opts.Provider)
	}
}
