package handler

import "net/http"

// apiKeyHeader is the header admin requests authenticate with.
const apiKeyHeader = "api_key"

// requireAPIKey gates admin mutations behind the configured API key set.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(apiKeyHeader)
		if key == "" || h.keys == nil || !h.keys.Verify(key) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
