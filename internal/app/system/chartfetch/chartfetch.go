// Package chartfetch reads chart datasets from the ticketing server.
//
// Each Fetch is a single GET with no retry. Failures come back as a Result
// carrying the error instead of being dropped.
package chartfetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrTransport wraps failures to build, send, or read the request.
	ErrTransport = errors.New("transport error")
	// ErrStatus is returned for non-2xx responses.
	ErrStatus = errors.New("unexpected status")
	// ErrMalformed is returned when the body is not {"values": [numbers...]}.
	ErrMalformed = errors.New("malformed response")
)

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// Result is the outcome of one fetch.
type Result struct {
	Endpoint string
	Values   []float64
	Status   int
	Elapsed  time.Duration
	Err      error
}

// OK reports whether the fetch produced a dataset.
func (r Result) OK() bool {
	return r.Err == nil
}

// payload is the body served by /ticket_data/, /type_data/ and /status_data/.
// Pointer elements let a null entry be told apart from 0.
type payload struct {
	Values *[]*float64 `json:"values"`
}

// Client fetches datasets relative to BaseURL.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

// New constructs a Client. A nil httpClient uses a client with no overall
// timeout; deadlines come from the context passed to Fetch.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
		Log:     logger,
	}
}

// Fetch issues one GET for endpoint and decodes its values array.
func (c *Client) Fetch(ctx context.Context, endpoint string) Result {
	start := time.Now()
	res := c.fetch(ctx, endpoint)
	res.Endpoint = endpoint
	res.Elapsed = time.Since(start)

	if res.Err != nil {
		c.Log.Warn("chart data fetch failed",
			zap.String("endpoint", endpoint),
			zap.Int("status", res.Status),
			zap.Duration("elapsed", res.Elapsed),
			zap.Error(res.Err))
	} else {
		c.Log.Debug("chart data fetched",
			zap.String("endpoint", endpoint),
			zap.Int("values", len(res.Values)),
			zap.Duration("elapsed", res.Elapsed))
	}
	return res
}

func (c *Client) fetch(ctx context.Context, endpoint string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(endpoint), nil)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %v", ErrTransport, err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Result{Err: fmt.Errorf("%w: %v", ErrTransport, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return Result{Status: resp.StatusCode, Err: fmt.Errorf("%w: %s", ErrStatus, resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Result{Status: resp.StatusCode, Err: fmt.Errorf("%w: reading body: %v", ErrTransport, err)}
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Result{Status: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if p.Values == nil {
		return Result{Status: resp.StatusCode, Err: fmt.Errorf("%w: missing values", ErrMalformed)}
	}

	values := make([]float64, len(*p.Values))
	for i, v := range *p.Values {
		if v == nil {
			return Result{Status: resp.StatusCode, Err: fmt.Errorf("%w: null value at index %d", ErrMalformed, i)}
		}
		values[i] = *v
	}

	return Result{Status: resp.StatusCode, Values: values}
}

func (c *Client) url(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.BaseURL + endpoint
}
