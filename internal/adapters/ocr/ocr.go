// Package ocr provides the capability seam for image text recognition.
// The recognizer returns raw, possibly noisy text; all cleanup belongs to
// the normalization pipeline downstream
package ocr

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"

	perr "mathgate/internal/platform/errors"
	"mathgate/internal/platform/logger"
)

// DefaultLangs is the recognition hint for mixed Arabic and English input
const DefaultLangs = "ara+eng"

const (
	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

// Recognizer extracts raw text from image bytes
// Implementations must treat the result as unstructured
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, langs string) (string, error)
}

// Options configures the HTTP recognizer
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Client posts image bytes to a recognition service
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = "mathgate"
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	return &Client{http: hc, opts: o, log: *logger.Named("ocr")}
}

type recognizeResponse struct {
	Text string `json:"text"`
}

// Recognize implements Recognizer over HTTP; every failure maps to
// ErrorCodeOCR so callers can report it distinctly from solver failures
func (c *Client) Recognize(ctx context.Context, image []byte, langs string) (string, error) {
	if len(image) == 0 {
		return "", perr.OCRf("empty image")
	}
	if langs == "" {
		langs = DefaultLangs
	}

	u := c.opts.BaseURL + "/recognize?langs=" + url.QueryEscape(langs)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(image))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeOCR, "ocr new request")
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeOCR, "ocr unreachable")
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeOCR, "ocr read response")
	}

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Int("image_bytes", len(image)).
		Msg("ocr http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", perr.Newf(perr.ErrorCodeOCR, "ocr status %d", resp.StatusCode)
	}

	var out recognizeResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeOCR, "ocr malformed response")
	}
	if out.Text == "" {
		return "", perr.OCRf("nothing recognized")
	}
	return out.Text, nil
}
