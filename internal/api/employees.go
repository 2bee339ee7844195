package api

import (
	"database/sql"
	"net/http"

	"github.com/founddesk/founddesk/internal/model"
	"github.com/founddesk/founddesk/internal/store"
)

// EmployeesHandler handles staff endpoints.
type EmployeesHandler struct {
	DB *sql.DB
}

type createEmployeeRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

// List handles GET /api/employees: staff with performance counters.
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	perf, err := store.GetEmployeePerformance(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list employees")
		return
	}
	if perf == nil {
		perf = []model.EmployeePerformance{}
	}
	jsonResponse(w, http.StatusOK, perf)
}

// Create handles POST /api/employees.
func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := store.CreateEmployee(r.Context(), h.DB, req.FirstName, req.LastName, req.Position)
	if err != nil {
		storeError(w, err, "failed to create employee")
		return
	}

	jsonResponse(w, http.StatusCreated, employee)
}
