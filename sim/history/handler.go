package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Reader is the read side of a run store.
type Reader interface {
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
}

// NewHandler returns a read-only HTTP view of the run history:
//
//	GET /runs             list runs (optional ?limit=N)
//	GET /runs/{id}        one run as JSON
//	GET /runs/{id}/trace  the rendered log as text/plain
func NewHandler(store Reader) http.Handler {
	h := &handler{store: store}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/runs", h.listRuns)
	r.Get("/runs/{id}", h.getRun)
	r.Get("/runs/{id}/trace", h.getTrace)
	return r
}

type handler struct {
	store Reader
}

func (h *handler) listRuns(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	runs, err := h.store.ListRuns(r.Context(), limit)
	if err != nil {
		logrus.Errorf("list runs: %v", err)
		writeError(w, http.StatusInternalServerError, "listing runs failed")
		return
	}
	if runs == nil {
		runs = []*Run{}
	}
	writeJSON(w, http.StatusOK, runs)
}

func (h *handler) lookup(w http.ResponseWriter, r *http.Request) (*Run, bool) {
	run, err := h.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	if err != nil {
		logrus.Errorf("get run: %v", err)
		writeError(w, http.StatusInternalServerError, "loading run failed")
		return nil, false
	}
	return run, true
}

func (h *handler) getRun(w http.ResponseWriter, r *http.Request) {
	if run, ok := h.lookup(w, r); ok {
		writeJSON(w, http.StatusOK, run)
	}
}

func (h *handler) getTrace(w http.ResponseWriter, r *http.Request) {
	run, ok := h.lookup(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(run.Trace))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
