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

// RelayDispatcher posts the booking as JSON to a generic form-relay endpoint.
// The relay only knows one recipient, so confirmation notices are skipped.
type RelayDispatcher struct {
	url    string
	client *http.Client
}

func NewRelayDispatcher(url string, client *http.Client) (*RelayDispatcher, error) {
	if url == "" {
		return nil, errors.New("relay: RELAY_URL is not set")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &RelayDispatcher{url: url, client: client}, nil
}

func relaySubject(name string) string {
	if strings.TrimSpace(name) == "" {
		name = "Customer"
	}
	return fmt.Sprintf("TimeBack Wash & Fold Request from %s", name)
}

func (d *RelayDispatcher) Dispatch(ctx context.Context, notice Notice, payload models.Payload) error {
	if notice != NoticeNewOrder {
		return nil
	}

	fields := payload.Params()
	fields["_subject"] = relaySubject(payload.Name)
	body, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("relay: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("relay: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &RejectedError{Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}
	return nil
}
