package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"timeback/models"
)

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSConfig carries the identifiers EmailJS needs for every send.
type EmailJSConfig struct {
	ServiceID              string
	NewOrderTemplateID     string
	ConfirmationTemplateID string
	APIKey                 string // public key, sent as user_id
	PrivateKey             string // optional access token
	Endpoint               string
}

func (c EmailJSConfig) validate() error {
	var missing []string
	if c.ServiceID == "" {
		missing = append(missing, "serviceId")
	}
	if c.NewOrderTemplateID == "" {
		missing = append(missing, "newOrderTemplateId")
	}
	if c.ConfirmationTemplateID == "" {
		missing = append(missing, "confirmationTemplateId")
	}
	if c.APIKey == "" {
		missing = append(missing, "apiKey")
	}
	if len(missing) > 0 {
		return fmt.Errorf("emailjs config missing %s", strings.Join(missing, ", "))
	}
	return nil
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// EmailJSDispatcher sends each notice through its own EmailJS template.
type EmailJSDispatcher struct {
	cfg    EmailJSConfig
	client *http.Client
}

func NewEmailJSDispatcher(cfg EmailJSConfig, client *http.Client) (*EmailJSDispatcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEmailJSEndpoint
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &EmailJSDispatcher{cfg: cfg, client: client}, nil
}

func (d *EmailJSDispatcher) templateFor(notice Notice) (string, error) {
	switch notice {
	case NoticeNewOrder:
		return d.cfg.NewOrderTemplateID, nil
	case NoticeConfirmation:
		return d.cfg.ConfirmationTemplateID, nil
	default:
		return "", fmt.Errorf("emailjs: no template for %s", notice)
	}
}

func (d *EmailJSDispatcher) Dispatch(ctx context.Context, notice Notice, payload models.Payload) error {
	templateID, err := d.templateFor(notice)
	if err != nil {
		return err
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:      d.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         d.cfg.APIKey,
		TemplateParams: payload.Params(),
		AccessToken:    d.cfg.PrivateKey,
	})
	if err != nil {
		return fmt.Errorf("emailjs: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("emailjs: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: send %s: %w", notice, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RejectedError{Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
	return nil
}

// RejectedError is returned when the delivery service answers with a non-2xx status.
type RejectedError struct {
	Status int
	Body   string
}

func (e *RejectedError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider rejected request: status %d", e.Status)
	}
	return fmt.Sprintf("provider rejected request: status %d: %s", e.Status, e.Body)
}

// IsRejected reports whether err came from a non-2xx provider response.
func IsRejected(err error) bool {
	var rejected *RejectedError
	return errors.As(err, &rejected)
}
