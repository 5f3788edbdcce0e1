package httpkit

import "net/http"

// MountUnder wires a module's routes under prefix on a fresh subrouter,
// applying any module scoped middlewares first
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}
