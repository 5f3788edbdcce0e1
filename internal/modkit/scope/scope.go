// Package scope carries request scoped log attributes across middleware
// boundaries, e.g. the session id stashed by the session middleware and
// emitted by the access log
package scope

import "context"

// Scope is a flat string attribute bag
type Scope struct {
	Values map[string]string
}

type key struct{}

// With returns a ctx whose scope contains the merged attributes.
// Later writes win on key collision
func With(ctx context.Context, kv map[string]string) context.Context {
	s := From(ctx)
	for k, v := range kv {
		s.Values[k] = v
	}
	return context.WithValue(ctx, key{}, s)
}

// Get looks up a single attribute
func Get(ctx context.Context, k string) (string, bool) {
	v, ok := From(ctx).Values[k]
	return v, ok
}

// From returns the scope on ctx; the Values map is always non-nil
func From(ctx context.Context) Scope {
	v := ctx.Value(key{})
	if v == nil {
		return Scope{Values: make(map[string]string)}
	}
	s, _ := v.(Scope)
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	return s
}
