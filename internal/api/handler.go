// Package api serves the watch-mode observability endpoints: Prometheus
// metrics, liveness, and the report of the most recent assembly run.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kmerlab/seqasm/internal/pipeline"
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	last func() *pipeline.Report // nil until the first successful run
	mux  *http.ServeMux
}

// New creates an HTTP handler and registers all routes. last must return the
// most recent successful assembly report, or nil if there is none yet.
func New(last func() *pipeline.Report) http.Handler {
	h := &Handler{last: last, mux: http.NewServeMux()}

	h.mux.HandleFunc("GET /v1/assemblies/last", h.lastAssembly)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return h.mux
}

// GET /v1/assemblies/last — report of the most recent successful run.
func (h *Handler) lastAssembly(w http.ResponseWriter, r *http.Request) {
	rep := h.last()
	if rep == nil {
		writeError(w, http.StatusNotFound, "no assembly has completed yet")
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
