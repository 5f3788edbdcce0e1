// Package time holds small time helpers shared by the repos
package time

import "time"

// Ptr maps the zero time to nil, anything else to a pointer.
// Row structs use it for nullable timestamp columns
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
