// Package upstream is the client for the external scripting backend that owns
// all persistence. Every read is a GET with an action query parameter, every
// write is a POST carrying the action plus a JSON payload; the backend answers
// either with data or with a {"status":"error","message":...} envelope.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Outcome reports what we know about a write after it was sent. A client in
// fire-and-forget mode cannot read responses, so "unknown" is a real answer
// and is never silently promoted to success.
type Outcome int

const (
	OutcomeFailure Outcome = iota
	OutcomeSuccess
	OutcomeUnknown
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeUnknown:
		return "unknown"
	default:
		return "failure"
	}
}

// RemoteError is an application-level error reported by the backend itself,
// as opposed to a transport or HTTP failure.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "upstream: " + e.Message
}

var ErrNoData = errors.New("upstream: empty response")

type Config struct {
	BaseURL string
	// FireAndForget mirrors the legacy transport that cannot read write
	// responses. Writes then return OutcomeUnknown.
	FireAndForget bool
}

type Client struct {
	config Config
	client HTTPClient
}

func NewClient(config Config, client HTTPClient) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{config: config, client: client}
}

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetAction performs a read: GET ?action=<action>. The decoded body is stored
// into v, which must be a pointer.
func (c *Client) GetAction(ctx context.Context, action string, v any) error {
	u := c.config.BaseURL + "?action=" + url.QueryEscape(action)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: get %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream: get %s: unexpected status %d", action, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("upstream: get %s: %w", action, err)
	}

	if err := checkEnvelope(body); err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// PostAction performs a write as a form-encoded POST: action plus the
// JSON-encoded payload. The returned body is decoded into v when v is
// non-nil and the client can read responses.
func (c *Client) PostAction(ctx context.Context, action string, payload any, v any) (Outcome, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return OutcomeFailure, err
	}

	form := url.Values{}
	form.Set("action", action)
	form.Set("payload", string(encoded))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return OutcomeFailure, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return OutcomeFailure, fmt.Errorf("upstream: post %s: %w", action, err)
	}
	defer resp.Body.Close()

	if c.config.FireAndForget {
		io.Copy(io.Discard, resp.Body)
		return OutcomeUnknown, nil
	}

	if resp.StatusCode != http.StatusOK {
		return OutcomeFailure, fmt.Errorf("upstream: post %s: unexpected status %d", action, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return OutcomeFailure, fmt.Errorf("upstream: post %s: %w", action, err)
	}
	if len(body) == 0 {
		return OutcomeFailure, ErrNoData
	}

	if err := checkEnvelope(body); err != nil {
		return OutcomeFailure, err
	}
	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return OutcomeFailure, err
		}
	}
	return OutcomeSuccess, nil
}

// PostJSON is the worker-variant write: the action travels inside a JSON body
// as {"action":...,"payload":...} instead of a form. Outcome semantics match
// PostAction.
func (c *Client) PostJSON(ctx context.Context, action string, payload any) (Outcome, error) {
	encoded, err := json.Marshal(map[string]any{"action": action, "payload": payload})
	if err != nil {
		return OutcomeFailure, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL,
		bytes.NewReader(encoded))
	if err != nil {
		return OutcomeFailure, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return OutcomeFailure, fmt.Errorf("upstream: post %s: %w", action, err)
	}
	defer resp.Body.Close()

	if c.config.FireAndForget {
		io.Copy(io.Discard, resp.Body)
		return OutcomeUnknown, nil
	}

	if resp.StatusCode != http.StatusOK {
		return OutcomeFailure, fmt.Errorf("upstream: post %s: unexpected status %d", action, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return OutcomeFailure, fmt.Errorf("upstream: post %s: %w", action, err)
	}
	if err := checkEnvelope(body); err != nil {
		return OutcomeFailure, err
	}
	return OutcomeSuccess, nil
}

// GetData is the admin-style read that tunnels a sub_action through a POST.
func (c *Client) GetData(ctx context.Context, subAction string, v any) error {
	_, err := c.PostAction(ctx, "getData", map[string]string{"sub_action": subAction}, v)
	return err
}

func checkEnvelope(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil
	}
	if env.Status == "error" {
		return &RemoteError{Message: env.Message}
	}
	return nil
}
