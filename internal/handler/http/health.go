package http

import (
	"net/http"
)

// health is the liveness probe clients use to detect connectivity. It carries
// no owner scope and touches no storage.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
