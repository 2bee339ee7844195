package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/founddesk/founddesk/internal/model"
	"github.com/founddesk/founddesk/internal/store"
)

// ClaimsHandler handles the claim lifecycle endpoints.
type ClaimsHandler struct {
	DB *sql.DB
}

type fileClaimRequest struct {
	ItemID           int64  `json:"item_id"`
	OwnerFirstName   string `json:"owner_first_name"`
	OwnerLastName    string `json:"owner_last_name"`
	VerificationCode string `json:"verification_code"`
}

type assignClaimRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

// ListPending handles GET /api/claims.
func (h *ClaimsHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	claims, err := store.ListPendingClaims(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list claims")
		return
	}
	if claims == nil {
		claims = []model.Claim{}
	}
	jsonResponse(w, http.StatusOK, claims)
}

// File handles POST /api/claims.
func (h *ClaimsHandler) File(w http.ResponseWriter, r *http.Request) {
	var req fileClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claim, err := store.FileClaim(r.Context(), h.DB, req.ItemID, req.OwnerFirstName, req.OwnerLastName, req.VerificationCode)
	if err != nil {
		storeError(w, err, "failed to file claim")
		return
	}

	jsonResponse(w, http.StatusCreated, claim)
}

// Assign handles POST /api/claims/{id}/assign.
func (h *ClaimsHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	var req assignClaimRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.AssignClaim(r.Context(), h.DB, id, req.EmployeeID); err != nil {
		storeError(w, err, "failed to assign claim")
		return
	}

	claim, _ := store.GetClaim(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, claim)
}

// Approve handles POST /api/claims/{id}/approve.
func (h *ClaimsHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	claimID, itemID, err := store.ApproveClaim(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to approve claim")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]int64{
		"claim_id": claimID,
		"item_id":  itemID,
	})
}

// Reject handles POST /api/claims/{id}/reject.
func (h *ClaimsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid claim id")
		return
	}

	if err := store.RejectClaim(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "failed to reject claim")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "claim rejected"})
}
