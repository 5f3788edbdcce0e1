package httpkit

import (
	"compress/flate"
	"net/http"

	phttp "mathgate/internal/platform/net/http"
	"mathgate/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware every mounted surface gets.
// main appends the session middleware on top
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),

		middleware.RecoverJSON,

		middleware.NoCache(),

		middleware.Logger(),

		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * 1e9), // 30s
	}
}

// Session binds the session middleware to the platform JSON writer
func Session(p middleware.SessionPort) func(http.Handler) http.Handler {
	return middleware.Session(p, phttp.JSON)
}
