package api

import (
	"net/http"

	"repo-health-search/internal/cache"
)

// CacheStatsHandler reports cache size and keys, for debugging.
func CacheStatsHandler(c *cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Only GET allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, c.Stats())
	}
}
