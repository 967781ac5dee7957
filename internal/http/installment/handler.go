package installment

import (
	"encoding/json"
	"errors"
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
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/totals", h.totals)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/pay", h.payOneMonth)
	r.Patch("/{id}/note", h.setNote)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	q := r.URL.Query()

	enriched := installment.EnrichAll(h.svc.List(), now)
	enriched = installment.Filter(enriched, q.Get("q"), q.Get("bank"), q.Get("hide_completed") == "true")

	if key := q.Get("sort"); key != "" {
		enriched = installment.SortRows(enriched, installment.SortKey(key), q.Get("dir") == "desc")
	}

	writeJSON(w, http.StatusOK, toResponseList(enriched))
}

func (h *Handler) totals(w http.ResponseWriter, r *http.Request) {
	enriched := installment.EnrichAll(h.svc.List(), time.Now())
	writeJSON(w, http.StatusOK, installment.SumTotals(enriched))
}

type createRequest struct {
	Bank           string  `json:"bank"`
	Transaction    string  `json:"transaction"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	MonthsPaid     float64 `json:"monthsPaid"`
	TotalMonths    float64 `json:"totalMonths"`
	Note           string  `json:"note"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.svc.Add(r.Context(), installment.CreateParams{
		Bank:           req.Bank,
		Transaction:    req.Transaction,
		MonthlyPayment: req.MonthlyPayment,
		MonthsPaid:     req.MonthsPaid,
		TotalMonths:    req.TotalMonths,
		Note:           req.Note,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(record, time.Now()))
}

type updateRequest struct {
	Bank           *string  `json:"bank,omitempty"`
	Transaction    *string  `json:"transaction,omitempty"`
	MonthlyPayment *float64 `json:"monthlyPayment,omitempty"`
	MonthsPaid     *float64 `json:"monthsPaid,omitempty"`
	TotalMonths    *float64 `json:"totalMonths,omitempty"`
	Note           *string  `json:"note,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), installment.Patch{
		Bank:           req.Bank,
		Transaction:    req.Transaction,
		MonthlyPayment: req.MonthlyPayment,
		MonthsPaid:     req.MonthsPaid,
		TotalMonths:    req.TotalMonths,
		Note:           req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(record, time.Now()))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) payOneMonth(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.PayOneMonth(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(record, time.Now()))
}

type noteRequest struct {
	Note string `json:"note"`
}

func (h *Handler) setNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.svc.SetNote(r.Context(), chi.URLParam(r, "id"), req.Note)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(record, time.Now()))
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, installment.ErrNotFound) {
		http.Error(w, "installment not found", http.StatusNotFound)
		return
	}

	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
