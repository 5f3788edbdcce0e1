// Package assets carries the embedded static payload for the offline surface
package assets

import "embed"

// Static holds the app shell files served to clients
//
//go:embed static
var Static embed.FS
