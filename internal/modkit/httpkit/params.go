package httpkit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Param returns the named route parameter from the request, empty if absent
func Param(r *http.Request, key string) string { return chi.URLParam(r, key) }
