// Package solver provides the HTTP client for the external symbolic solver
package solver

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"context"

	"github.com/bytedance/sonic"

	perr "mathgate/internal/platform/errors"
	"mathgate/internal/platform/logger"
)

const (
	defaultTimeout = 15 * time.Second
	defaultUA      = "mathgate"

	// responses are small; cap reads so a broken upstream cannot balloon memory
	maxBodyBytes = 1 << 20
)

// Options configures the Client
type Options struct {
	// BaseURL of the solver service, no trailing slash
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Client is a minimal solver client with a bounded timeout
// One request one response; retries are the user's resubmission
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{
		http: hc,
		opts: o,
		log:  *logger.Named("solver"),
	}
}

// Solve posts a canonical expression and returns the structured outcome.
// Transport failures and non-2xx statuses map to ErrorCodeUpstream; an
// ok:false body maps to ErrorCodeSolverRejected carrying the solver's
// message verbatim
func (c *Client) Solve(ctx context.Context, req Request) (Response, error) {
	var zero Response

	body, err := sonic.Marshal(req)
	if err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeUnknown, "solver encode request")
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/solve", bytes.NewReader(body))
	if err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeUnknown, "solver new request")
	}
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", "application/json")
	hreq.Header.Set("User-Agent", c.opts.UserAgent)

	start := time.Now()
	resp, err := c.http.Do(hreq)
	if err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeUpstream, "solver unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeUpstream, "solver read response")
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Int("bytes", len(raw)).
		Msg("solver http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, perr.Newf(perr.ErrorCodeUpstream, "solver status %d", resp.StatusCode)
	}

	var out Response
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return zero, perr.Wrapf(err, perr.ErrorCodeUpstream, "solver malformed response")
	}

	if !out.OK {
		// surfaced to the user verbatim
		return zero, perr.Newf(perr.ErrorCodeSolverRejected, "%s", out.Error)
	}
	return out, nil
}
