package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/founddesk/founddesk/internal/model"
	"github.com/founddesk/founddesk/internal/store"
)

// ClaimsPage handles GET /claims.
func (s *Server) ClaimsPage(w http.ResponseWriter, r *http.Request) {
	claims, err := store.ListPendingClaims(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list pending claims", "error", err)
	}
	employees, err := store.ListEmployees(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list employees", "error", err)
	}

	s.Templates.Render(w, "claims.html", &struct {
		PageData
		Claims    []model.Claim
		Employees []model.Employee
	}{
		PageData:  PageData{Title: "Pending claims", Error: r.URL.Query().Get("error")},
		Claims:    claims,
		Employees: employees,
	})
}

// ClaimAssignSubmit handles POST /claims/{id}/assign.
func (s *Server) ClaimAssignSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	employeeID, err := strconv.ParseInt(r.FormValue("employee_id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/claims?error=employee+required", http.StatusSeeOther)
		return
	}

	if err := store.AssignClaim(r.Context(), s.DB, id, employeeID); err != nil {
		s.claimActionError(w, r, err, "failed to assign claim")
		return
	}

	http.Redirect(w, r, "/claims", http.StatusSeeOther)
}

// ClaimApproveSubmit handles POST /claims/{id}/approve.
func (s *Server) ClaimApproveSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if _, _, err := store.ApproveClaim(r.Context(), s.DB, id); err != nil {
		s.claimActionError(w, r, err, "failed to approve claim")
		return
	}

	http.Redirect(w, r, "/claims", http.StatusSeeOther)
}

// ClaimRejectSubmit handles POST /claims/{id}/reject.
func (s *Server) ClaimRejectSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.RejectClaim(r.Context(), s.DB, id); err != nil {
		s.claimActionError(w, r, err, "failed to reject claim")
		return
	}

	http.Redirect(w, r, "/claims", http.StatusSeeOther)
}

// claimActionError redirects domain errors back to the claims page and
// reports everything else as a server error.
func (s *Server) claimActionError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) || errors.Is(err, model.ErrValidation) {
		http.Redirect(w, r, "/claims?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	slog.Error(msg, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
