package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/founddesk/founddesk/internal/model"
	"github.com/founddesk/founddesk/internal/store"
)

// EmployeesPage handles GET /employees.
func (s *Server) EmployeesPage(w http.ResponseWriter, r *http.Request) {
	perf, err := store.GetEmployeePerformance(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to get employee performance", "error", err)
	}

	s.Templates.Render(w, "employees.html", &struct {
		PageData
		Employees []model.EmployeePerformance
	}{
		PageData:  PageData{Title: "Staff", Error: r.URL.Query().Get("error")},
		Employees: perf,
	})
}

// EmployeeCreateSubmit handles POST /employees.
func (s *Server) EmployeeCreateSubmit(w http.ResponseWriter, r *http.Request) {
	_, err := store.CreateEmployee(r.Context(), s.DB,
		r.FormValue("first_name"),
		r.FormValue("last_name"),
		r.FormValue("position"),
	)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			http.Redirect(w, r, "/employees?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
			return
		}
		slog.Error("failed to create employee", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/employees", http.StatusSeeOther)
}
