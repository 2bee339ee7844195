package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{DB: db}
	claimsHandler := &ClaimsHandler{DB: db}
	employeesHandler := &EmployeesHandler{DB: db}
	reportsHandler := &ReportsHandler{DB: db}

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PUT /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)
	mux.HandleFunc("GET /api/items/{id}/history", itemsHandler.GetHistory)
	mux.HandleFunc("PUT /api/items/{id}/photo", itemsHandler.UploadPhoto)
	mux.HandleFunc("GET /api/items/{id}/photo", itemsHandler.GetPhoto)

	// Claims.
	mux.HandleFunc("GET /api/claims", claimsHandler.ListPending)
	mux.HandleFunc("POST /api/claims", claimsHandler.File)
	mux.HandleFunc("POST /api/claims/{id}/assign", claimsHandler.Assign)
	mux.HandleFunc("POST /api/claims/{id}/approve", claimsHandler.Approve)
	mux.HandleFunc("POST /api/claims/{id}/reject", claimsHandler.Reject)

	// Employees and reports.
	mux.HandleFunc("GET /api/employees", employeesHandler.List)
	mux.HandleFunc("POST /api/employees", employeesHandler.Create)
	mux.HandleFunc("GET /api/metrics", reportsHandler.Metrics)
	mux.HandleFunc("GET /api/reports/disputed", reportsHandler.Disputed)

	return CORSMiddleware(mux)
}
