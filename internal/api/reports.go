package api

import (
	"database/sql"
	"net/http"

	"github.com/founddesk/founddesk/internal/model"
	"github.com/founddesk/founddesk/internal/store"
)

// ReportsHandler handles metrics and reporting endpoints.
type ReportsHandler struct {
	DB *sql.DB
}

// Metrics handles GET /api/metrics.
func (h *ReportsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := store.GetDashboardMetrics(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to compute metrics")
		return
	}
	jsonResponse(w, http.StatusOK, metrics)
}

// Disputed handles GET /api/reports/disputed.
func (h *ReportsHandler) Disputed(w http.ResponseWriter, r *http.Request) {
	disputed, err := store.FindDisputedItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to find disputed items")
		return
	}
	if disputed == nil {
		disputed = []model.DisputedItem{}
	}
	jsonResponse(w, http.StatusOK, disputed)
}
