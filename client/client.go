// Package client is the portal's typed HTTP client for the booking backend
// and the mocked payment gateway. All field-name normalization and error
// classification happens here; nothing past this package sees raw payloads.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnavailable covers transport failures and malformed responses.
	// Callers degrade (availability goes Unknown) instead of failing pages.
	ErrUnavailable = errors.New("backend_unavailable")

	// ErrUnauthorized is a backend 401. The session layer owns it; generic
	// error surfacing must not.
	ErrUnauthorized = errors.New("session_expired")

	ErrNotFound = errors.New("not_found")
)

// RejectedError is a business rejection: the backend answered, envelope
// success=false, with a message meant for the user.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

type Config struct {
	BaseURL    string
	PaymentURL string
	Timeout    time.Duration
}

type Client struct {
	baseURL    string
	paymentURL string
	http       *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		paymentURL: strings.TrimRight(cfg.PaymentURL, "/"),
		http:       &http.Client{Timeout: timeout},
	}
}

// envelope is the backend's uniform response shape. success=false and a
// transport error are treated identically by callers: surface the error,
// leave prior state untouched.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) do(ctx context.Context, method, url, token string, headers map[string]string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithFields(logrus.Fields{"method": method, "url": url}).
			WithError(err).Warn("backend request failed")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: bad envelope", ErrUnavailable)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request rejected"
		}
		return &RejectedError{Message: msg}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: bad payload", ErrUnavailable)
	}
	return nil
}
