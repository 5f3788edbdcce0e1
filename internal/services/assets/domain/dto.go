// Package domain holds DTOs for the asset and offline-cache surface
package domain

// Manifest tells the service worker what to cache and under which name.
// The cache name carries the app version so activation can drop stale caches
type Manifest struct {
	CacheName string   `json:"cache_name" example:"mathgate-v0.0.1"`
	Version   string   `json:"version" example:"v0.0.1"`
	Strategy  string   `json:"strategy" example:"network-first"`
	Prefetch  []string `json:"prefetch"`
}
