package insights

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/angsur/internal/installment"
)

type Handler struct {
	svc *installment.Service
}

func NewHandler(svc *installment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/snapshot", h.snapshot)
	r.Get("/relief", h.relief)
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	enriched := installment.EnrichAll(h.svc.List(), refNow(r))
	writeJSON(w, installment.TakeSnapshot(enriched))
}

func (h *Handler) relief(w http.ResponseWriter, r *http.Request) {
	now := refNow(r)
	enriched := installment.EnrichAll(h.svc.List(), now)
	writeJSON(w, installment.ProjectRelief(enriched, now))
}

// refNow reads an optional ?now=YYYY-MM query to pin the reference month;
// the core never touches the wall clock itself.
func refNow(r *http.Request) time.Time {
	if s := r.URL.Query().Get("now"); s != "" {
		if t, err := time.Parse("2006-01", s); err == nil {
			return t
		}
	}

	return time.Now()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
