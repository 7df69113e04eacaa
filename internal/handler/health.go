package handler

import (
	"encoding/json"
	"net/http"
)

// HandleRoot is the liveness probe.
// GET /
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Resume Tailor API is running"))
}

// HandleHealthz responds with a 200 OK and a JSON body indicating the server is healthy.
// GET /healthz
func HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
