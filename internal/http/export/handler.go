package export

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/MrJamesThe3rd/angsur/internal/export"
	"github.com/MrJamesThe3rd/angsur/internal/installment"
)

type Handler struct {
	svc *installment.Service
}

func NewHandler(svc *installment.Service) *Handler {
	return &Handler{svc: svc}
}

// ExportCSV streams the collection as a CSV download. All records are
// included, completed ones too; the enriched columns are computed at
// export time.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	enriched := installment.EnrichAll(h.svc.List(), time.Now())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="installments.csv"`)

	if err := export.CSV(w, enriched); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}
