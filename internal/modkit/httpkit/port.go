// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"net/http"
	"strings"

	perrs "mathgate/internal/platform/errors"
)

// SessionHeader is the header clients use to scope requests to a session
const SessionHeader = "X-Session-Id"

// SessionFunc validates a raw session id and returns the canonical form
// callers may plug uuid validation or a store lookup here
type SessionFunc func(raw string) (sessionID string, err error)

// Port implements middleware.SessionPort by reading the session header and delegating to a SessionFunc
type Port struct {
	parse SessionFunc
}

// NewPortFunc builds a Port from a simple validator function
func NewPortFunc(fn SessionFunc) *Port {
	return &Port{parse: fn}
}

// Parse extracts the session id from the session header.
// A missing or blank header is not an error: requests may be anonymous until
// the client creates a session. A present id the validator rejects is a
// validation error
func (p *Port) Parse(r *http.Request) (string, error) {
	raw := strings.TrimSpace(r.Header.Get(SessionHeader))
	if raw == "" {
		return "", nil
	}

	if p.parse == nil {
		return raw, nil
	}

	sid, err := p.parse(raw)
	if err != nil {
		return "", perrs.Validationf("invalid session id")
	}
	return sid, nil
}
