package handlers

import "net/http"

// NewRootHandler answers the liveness probe on /.
// @Summary Liveness
// @Tags health
// @Produce plain
// @Success 200 {string} string "Career Opportunities Platform API is running"
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Career Opportunities Platform API is running"))
	}
}
