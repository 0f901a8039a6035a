package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	requestTimeout = 30 * time.Second
	maxBodySize    = 4 << 20 // 4 MB, plenty for any worksheet fete touches
)

// Bridge is a Gateway backed by a sheet bridge service: a small HTTP shim
// (an Apps Script web app or equivalent) in front of the real spreadsheet.
//
//	GET  {base}/sheets/{name}            -> {"sheet": name, "values": [[...]]}
//	PUT  {base}/sheets/{name} {"values"} -> {"sheet": name, "rows": n}
type Bridge struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewBridge creates a client for the given bridge URL.
// Returns nil if the URL is empty or unparseable.
func NewBridge(baseURL, token string) *Bridge {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil
	}
	return &Bridge{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{},
	}
}

type readResponse struct {
	Sheet  string     `json:"sheet"`
	Values [][]string `json:"values"`
}

type writeRequest struct {
	Values [][]string `json:"values"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Read fetches the full contents of a worksheet.
func (b *Bridge) Read(ctx context.Context, worksheet string) ([][]string, error) {
	body, err := b.do(ctx, http.MethodGet, worksheet, nil)
	if err != nil {
		return nil, err
	}

	var resp readResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("gateway: parsing %q response: %w", worksheet, err)
	}
	return resp.Values, nil
}

// Write replaces the full contents of a worksheet.
func (b *Bridge) Write(ctx context.Context, worksheet string, values [][]string) error {
	payload, err := json.Marshal(writeRequest{Values: values})
	if err != nil {
		return fmt.Errorf("gateway: encoding %q payload: %w", worksheet, err)
	}

	_, err = b.do(ctx, http.MethodPut, worksheet, payload)
	return err
}

// do performs one authenticated request against the bridge and returns the
// response body, mapping HTTP status codes onto the gateway error set.
func (b *Bridge) do(ctx context.Context, method, worksheet string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	endpoint := b.baseURL + "/sheets/" + url.PathEscape(worksheet)

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("gateway: creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: %s %q: %w", strings.ToLower(method), worksheet, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("gateway: reading response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusNotFound:
		return nil, ErrWorksheetNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e errorResponse
		if json.Unmarshal(body, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("gateway: %s %q: %s (status %d)", strings.ToLower(method), worksheet, e.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("gateway: %s %q: unexpected status %d", strings.ToLower(method), worksheet, resp.StatusCode)
	}

	return body, nil
}
