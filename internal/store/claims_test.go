package store

import (
	"context"
	"errors"
	"testing"

	"github.com/founddesk/founddesk/internal/db"
	"github.com/founddesk/founddesk/internal/model"
)

func TestFileClaim(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")

	claim, err := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")
	if err != nil {
		t.Fatalf("FileClaim: %v", err)
	}
	if claim.VerificationStatus != model.ClaimPending {
		t.Errorf("expected pending claim, got %q", claim.VerificationStatus)
	}
	if claim.HandledBy != nil {
		t.Errorf("expected no handler on a fresh claim, got %v", *claim.HandledBy)
	}
	if claim.HandlerName != "Unassigned" {
		t.Errorf("expected handler name 'Unassigned', got %q", claim.HandlerName)
	}
	if claim.ItemName != "Wallet" {
		t.Errorf("expected joined item name, got %q", claim.ItemName)
	}
}

func TestFileClaimValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")

	if _, err := FileClaim(ctx, database, item.ID, "", "Lovelace", "VX1"); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected validation error for empty first name, got %v", err)
	}
	if _, err := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", ""); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected validation error for empty code, got %v", err)
	}
}

func TestFileClaimItemNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	_, err := FileClaim(ctx, database, 9999, "Ada", "Lovelace", "VX1")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestFileClaimAgainstClaimedItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")
	claim, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")
	if _, _, err := ApproveClaim(ctx, database, claim.ID); err != nil {
		t.Fatalf("ApproveClaim: %v", err)
	}

	_, err := FileClaim(ctx, database, item.ID, "Grace", "Hopper", "VX2")
	if !errors.Is(err, model.ErrConflict) {
		t.Errorf("expected conflict error for claimed item, got %v", err)
	}
}

func TestFileSecondPendingClaimAllowed(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")
	if _, err := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1"); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	// Competing claimants are expected; disputes surface in reporting.
	if _, err := FileClaim(ctx, database, item.ID, "Grace", "Hopper", "VX2"); err != nil {
		t.Fatalf("second pending claim should be allowed: %v", err)
	}
}

func TestApproveClaimFullEffect(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	employee, _ := CreateEmployee(ctx, database, "Mira", "Kos", "Desk clerk")
	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")
	claim, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")
	if err := AssignClaim(ctx, database, claim.ID, employee.ID); err != nil {
		t.Fatalf("AssignClaim: %v", err)
	}

	claimID, itemID, err := ApproveClaim(ctx, database, claim.ID)
	if err != nil {
		t.Fatalf("ApproveClaim: %v", err)
	}
	if claimID != claim.ID || itemID != item.ID {
		t.Errorf("expected ids (%d, %d), got (%d, %d)", claim.ID, item.ID, claimID, itemID)
	}

	gotClaim, _ := GetClaim(ctx, database, claim.ID)
	if gotClaim.VerificationStatus != model.ClaimApproved {
		t.Errorf("expected approved claim, got %q", gotClaim.VerificationStatus)
	}

	gotItem, _ := GetItem(ctx, database, item.ID)
	if gotItem.ClaimState != model.ClaimStateClaimed {
		t.Errorf("expected claimed item, got %q", gotItem.ClaimState)
	}
	if gotItem.DateUpdated.Before(item.DateUpdated) {
		t.Errorf("date_updated went backwards: %v -> %v", item.DateUpdated, gotItem.DateUpdated)
	}

	// Exactly one "Claimed" event.
	var claimedEvents int
	database.QueryRow(
		`SELECT COUNT(*) FROM item_status WHERE item_id = ? AND status = ?`,
		item.ID, model.StatusClaimed,
	).Scan(&claimedEvents)
	if claimedEvents != 1 {
		t.Errorf("expected exactly 1 Claimed event, got %d", claimedEvents)
	}

	gotEmployee, _ := GetEmployee(ctx, database, employee.ID)
	if gotEmployee.ItemsManaged != 1 {
		t.Errorf("expected items_managed to increase to 1, got %d", gotEmployee.ItemsManaged)
	}
}

func TestApproveClaimWithoutHandler(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	employee, _ := CreateEmployee(ctx, database, "Mira", "Kos", "Desk clerk")
	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")
	claim, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")

	if _, _, err := ApproveClaim(ctx, database, claim.ID); err != nil {
		t.Fatalf("ApproveClaim: %v", err)
	}

	// No handler assigned, so no counter moves.
	gotEmployee, _ := GetEmployee(ctx, database, employee.ID)
	if gotEmployee.ItemsManaged != 0 {
		t.Errorf("expected items_managed 0, got %d", gotEmployee.ItemsManaged)
	}
}

func TestApproveClaimSecondTimeFails(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	employee, _ := CreateEmployee(ctx, database, "Mira", "Kos", "Desk clerk")
	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")
	claim, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")
	AssignClaim(ctx, database, claim.ID, employee.ID)

	if _, _, err := ApproveClaim(ctx, database, claim.ID); err != nil {
		t.Fatalf("first ApproveClaim: %v", err)
	}
	if _, _, err := ApproveClaim(ctx, database, claim.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected not-found error on second approval, got %v", err)
	}

	// The four-part effect must not apply twice.
	var claimedEvents int
	database.QueryRow(
		`SELECT COUNT(*) FROM item_status WHERE item_id = ? AND status = ?`,
		item.ID, model.StatusClaimed,
	).Scan(&claimedEvents)
	if claimedEvents != 1 {
		t.Errorf("expected 1 Claimed event after double approval, got %d", claimedEvents)
	}

	gotEmployee, _ := GetEmployee(ctx, database, employee.ID)
	if gotEmployee.ItemsManaged != 1 {
		t.Errorf("expected items_managed 1 after double approval, got %d", gotEmployee.ItemsManaged)
	}
}

func TestApproveUnknownClaimLeavesNoTrace(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")

	_, _, err := ApproveClaim(ctx, database, 9999)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	gotItem, _ := GetItem(ctx, database, item.ID)
	if gotItem.ClaimState != model.ClaimStateUnclaimed {
		t.Errorf("expected item untouched, got state %q", gotItem.ClaimState)
	}

	var events int
	database.QueryRow(`SELECT COUNT(*) FROM item_status`).Scan(&events)
	if events != 1 { // only the intake event
		t.Errorf("expected only the intake event, got %d events", events)
	}
}

func TestRejectClaim(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	employee, _ := CreateEmployee(ctx, database, "Mira", "Kos", "Desk clerk")
	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")
	claim, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")
	AssignClaim(ctx, database, claim.ID, employee.ID)

	if err := RejectClaim(ctx, database, claim.ID); err != nil {
		t.Fatalf("RejectClaim: %v", err)
	}

	gotClaim, _ := GetClaim(ctx, database, claim.ID)
	if gotClaim.VerificationStatus != model.ClaimRejected {
		t.Errorf("expected rejected claim, got %q", gotClaim.VerificationStatus)
	}

	// Rejection touches only the claim: no item change, no status
	// event, no employee credit.
	gotItem, _ := GetItem(ctx, database, item.ID)
	if gotItem.ClaimState != model.ClaimStateUnclaimed {
		t.Errorf("expected item to stay unclaimed, got %q", gotItem.ClaimState)
	}

	var events int
	database.QueryRow(`SELECT COUNT(*) FROM item_status WHERE item_id = ?`, item.ID).Scan(&events)
	if events != 1 {
		t.Errorf("expected only the intake event, got %d", events)
	}

	gotEmployee, _ := GetEmployee(ctx, database, employee.ID)
	if gotEmployee.ItemsManaged != 0 {
		t.Errorf("expected items_managed 0 after rejection, got %d", gotEmployee.ItemsManaged)
	}
}

func TestTerminalStatesStayTerminal(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")
	rejected, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")
	RejectClaim(ctx, database, rejected.ID)

	if _, _, err := ApproveClaim(ctx, database, rejected.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected not-found error approving a rejected claim, got %v", err)
	}
	if err := RejectClaim(ctx, database, rejected.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected not-found error re-rejecting, got %v", err)
	}

	approved, _ := FileClaim(ctx, database, item.ID, "Grace", "Hopper", "VX2")
	ApproveClaim(ctx, database, approved.ID)

	if err := RejectClaim(ctx, database, approved.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected not-found error rejecting an approved claim, got %v", err)
	}
}

func TestAssignClaim(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	employee, _ := CreateEmployee(ctx, database, "Mira", "Kos", "Desk clerk")
	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")
	claim, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")

	if err := AssignClaim(ctx, database, claim.ID, employee.ID); err != nil {
		t.Fatalf("AssignClaim: %v", err)
	}

	got, _ := GetClaim(ctx, database, claim.ID)
	if got.HandledBy == nil || *got.HandledBy != employee.ID {
		t.Errorf("expected handler %d, got %v", employee.ID, got.HandledBy)
	}
	if got.HandlerName != "Mira Kos" {
		t.Errorf("expected handler name 'Mira Kos', got %q", got.HandlerName)
	}

	if err := AssignClaim(ctx, database, claim.ID, 9999); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected not-found error for missing employee, got %v", err)
	}

	RejectClaim(ctx, database, claim.ID)
	if err := AssignClaim(ctx, database, claim.ID, employee.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected not-found error assigning a resolved claim, got %v", err)
	}
}

func TestListPendingClaims(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	employee, _ := CreateEmployee(ctx, database, "Mira", "Kos", "Desk clerk")
	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")

	first, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")
	AssignClaim(ctx, database, first.ID, employee.ID)
	second, _ := FileClaim(ctx, database, item.ID, "Grace", "Hopper", "VX2")
	RejectClaim(ctx, database, second.ID)

	claims, err := ListPendingClaims(ctx, database)
	if err != nil {
		t.Fatalf("ListPendingClaims: %v", err)
	}
	if len(claims) != 1 {
		t.Fatalf("expected 1 pending claim, got %d", len(claims))
	}
	c := claims[0]
	if c.ID != first.ID {
		t.Errorf("expected claim %d, got %d", first.ID, c.ID)
	}
	if c.ItemName != "Wallet" || c.ItemCategory != "Accessories" || c.FoundAt != "Gate 3" {
		t.Errorf("expected joined item fields, got %+v", c)
	}
	if c.HandlerName != "Mira Kos" {
		t.Errorf("expected handler name, got %q", c.HandlerName)
	}
}
