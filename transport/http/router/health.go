package router

import (
	"bestevents/transport/http/response"
	"net/http"
)

// Health answers liveness probes. Readiness during shutdown is handled by the server.
func Health(w http.ResponseWriter, _ *http.Request) {
	response.WithMessage(w, http.StatusOK, "OK")
}
