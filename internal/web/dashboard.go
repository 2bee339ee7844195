package web

import (
	"log/slog"
	"net/http"

	"github.com/founddesk/founddesk/internal/model"
	"github.com/founddesk/founddesk/internal/store"
)

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	metrics, err := store.GetDashboardMetrics(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to compute metrics for dashboard", "error", err)
		metrics = &model.DashboardMetrics{}
	}
	disputed, err := store.FindDisputedItems(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to find disputed items for dashboard", "error", err)
	}
	recent, err := store.ListUnclaimedItems(r.Context(), s.DB, model.ItemFilter{})
	if err != nil {
		slog.Error("failed to list items for dashboard", "error", err)
	}

	// Limit recent finds to 10.
	if len(recent) > 10 {
		recent = recent[:10]
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Metrics     *model.DashboardMetrics
		Disputed    []model.DisputedItem
		RecentFinds []model.Item
	}{
		PageData:    PageData{Title: "Dashboard"},
		Metrics:     metrics,
		Disputed:    disputed,
		RecentFinds: recent,
	})
}
