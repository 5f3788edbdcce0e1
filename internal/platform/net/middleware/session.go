package middleware

import (
	"net/http"

	"mathgate/internal/modkit/scope"
	pnet "mathgate/internal/platform/net"
)

// SessionPort is a tiny seam the sessions service implements
type SessionPort interface {
	// Parse returns a session id from the request or an error
	Parse(r *http.Request) (sessionID string, err error)
}

// Session is a no-op until wired. It uses the port when provided
func Session(p SessionPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			sid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithRequest(r.Context(), pnet.RequestID(r.Context()), sid)
			if sid != "" {
				ctx = scope.With(ctx, map[string]string{"session_id": sid})
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
