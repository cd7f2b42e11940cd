package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bookings/internal/domain"
)

const (
	SearchPath    = "/search-json"
	CSRFTokenPath = "/csrf-token"

	maxErrorBody = 512
)

// Query is the form posted to the availability endpoint.
type Query struct {
	Start     string
	End       string
	CSRFToken string
	RoomID    domain.RoomID
}

func (q Query) form() url.Values {
	v := url.Values{}
	v.Set("start", q.Start)
	v.Set("end", q.End)
	v.Set("csrf_token", q.CSRFToken)
	v.Set("room_id", string(q.RoomID))
	return v
}

// Client talks to the availability service over HTTP. The underlying
// http.Client should carry a cookie jar so the CSRF cookie issued by
// FetchCSRFToken is sent back with Check.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Check posts q to the availability endpoint.
func (c *Client) Check(ctx context.Context, q Query) (domain.AvailabilityResult, error) {
	var res domain.AvailabilityResult

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SearchPath, strings.NewReader(q.form().Encode()))
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	if err := c.do(req, &res); err != nil {
		return domain.AvailabilityResult{}, err
	}
	if res.OK && (res.RoomID == "" || res.StartDate == "" || res.EndDate == "") {
		return domain.AvailabilityResult{}, fmt.Errorf("%w: ok result without room or dates", ErrDecode)
	}
	return res, nil
}

type csrfTokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}

// FetchCSRFToken asks the service for a fresh anti-forgery token.
func (c *Client) FetchCSRFToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+CSRFTokenPath, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	var body csrfTokenResponse
	if err := c.do(req, &body); err != nil {
		return "", err
	}
	if body.CSRFToken == "" {
		return "", fmt.Errorf("%w: empty csrf token", ErrDecode)
	}
	return body.CSRFToken, nil
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
