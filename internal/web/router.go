package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/founddesk/founddesk/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Dashboard)

	mux.HandleFunc("GET /items", s.ItemsPage)
	mux.HandleFunc("POST /items", s.ItemCreateSubmit)
	mux.HandleFunc("GET /items/{id}", s.ItemDetailPage)
	mux.HandleFunc("POST /items/{id}/claim", s.ClaimFileSubmit)
	mux.HandleFunc("POST /items/{id}/photo", s.ItemPhotoSubmit)
	mux.HandleFunc("GET /items/{id}/photo", s.ItemPhotoGet)

	mux.HandleFunc("GET /claims", s.ClaimsPage)
	mux.HandleFunc("POST /claims/{id}/assign", s.ClaimAssignSubmit)
	mux.HandleFunc("POST /claims/{id}/approve", s.ClaimApproveSubmit)
	mux.HandleFunc("POST /claims/{id}/reject", s.ClaimRejectSubmit)

	mux.HandleFunc("GET /employees", s.EmployeesPage)
	mux.HandleFunc("POST /employees", s.EmployeeCreateSubmit)

	return mux, nil
}
