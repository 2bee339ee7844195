package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/founddesk/founddesk/internal/model"
)

// FileClaim records an ownership assertion against an unclaimed item.
// Multiple pending claims against the same item are allowed; they are
// surfaced by the disputed-items report.
func FileClaim(ctx context.Context, db *sql.DB, itemID int64, firstName, lastName, verificationCode string) (*model.Claim, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("%w: claimant name required", model.ErrValidation)
	}
	if strings.TrimSpace(verificationCode) == "" {
		return nil, fmt.Errorf("%w: verification code required", model.ErrValidation)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var state string
	err = tx.QueryRowContext(ctx,
		`SELECT claim_state FROM items WHERE id = ?`, itemID,
	).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: item %d", model.ErrNotFound, itemID)
	}
	if err != nil {
		return nil, fmt.Errorf("checking item state: %w", err)
	}
	if state != model.ClaimStateUnclaimed {
		return nil, fmt.Errorf("%w: item %d is already claimed", model.ErrConflict, itemID)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO claims (item_id, verification_code, owner_first_name, owner_last_name)
		 VALUES (?, ?, ?, ?)`,
		itemID, verificationCode, firstName, lastName,
	)
	if err != nil {
		return nil, fmt.Errorf("filing claim: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}

	claimID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting claim id: %w", err)
	}
	return GetClaim(ctx, db, claimID)
}

// AssignClaim assigns a handling employee to a pending claim.
func AssignClaim(ctx context.Context, db *sql.DB, claimID, employeeID int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM employees WHERE id = ?`, employeeID,
	).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: employee %d", model.ErrNotFound, employeeID)
	}
	if err != nil {
		return fmt.Errorf("checking employee: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE claims SET handled_by = ? WHERE id = ? AND verification_status = ?`,
		employeeID, claimID, model.ClaimPending,
	)
	if err != nil {
		return fmt.Errorf("assigning claim: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking assignment result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: claim not found or already processed", model.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing assignment: %w", err)
	}
	return nil
}

// ApproveClaim approves a pending claim in a single transaction: the
// claim becomes approved, the item becomes claimed (refreshing its
// date_updated), a "Claimed" status event is appended, and the handling
// employee's items_managed counter is incremented if one is assigned.
// Either all four effects apply or none do.
func ApproveClaim(ctx context.Context, db *sql.DB, claimID int64) (int64, int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// A missing claim and an already-resolved claim are reported
	// identically: the caller cannot tell them apart.
	var itemID int64
	var handledBy sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT item_id, handled_by FROM claims WHERE id = ? AND verification_status = ?`,
		claimID, model.ClaimPending,
	).Scan(&itemID, &handledBy)
	if err == sql.ErrNoRows {
		return 0, 0, fmt.Errorf("%w: claim not found or already processed", model.ErrNotFound)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("looking up claim: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE claims SET verification_status = ? WHERE id = ?`,
		model.ClaimApproved, claimID,
	); err != nil {
		return 0, 0, fmt.Errorf("approving claim: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE items SET claim_state = ?, date_updated = CURRENT_TIMESTAMP WHERE id = ?`,
		model.ClaimStateClaimed, itemID,
	); err != nil {
		return 0, 0, fmt.Errorf("marking item claimed: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO item_status (item_id, status) VALUES (?, ?)`,
		itemID, model.StatusClaimed,
	); err != nil {
		return 0, 0, fmt.Errorf("recording claim status: %w", err)
	}

	if handledBy.Valid {
		if _, err := tx.ExecContext(ctx,
			`UPDATE employees SET items_managed = items_managed + 1 WHERE id = ?`,
			handledBy.Int64,
		); err != nil {
			return 0, 0, fmt.Errorf("crediting handling employee: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing approval: %w", err)
	}
	return claimID, itemID, nil
}

// RejectClaim rejects a pending claim. Only the claim's status changes:
// no item mutation, no status event, no employee counter update.
func RejectClaim(ctx context.Context, db *sql.DB, claimID int64) error {
	result, err := db.ExecContext(ctx,
		`UPDATE claims SET verification_status = ? WHERE id = ? AND verification_status = ?`,
		model.ClaimRejected, claimID, model.ClaimPending,
	)
	if err != nil {
		return fmt.Errorf("rejecting claim: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rejection result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: claim not found or already processed", model.ErrNotFound)
	}
	return nil
}

// GetClaim returns a claim by ID with its item and handler joined, or
// nil if it does not exist.
func GetClaim(ctx context.Context, db *sql.DB, id int64) (*model.Claim, error) {
	c := &model.Claim{}
	err := db.QueryRowContext(ctx,
		`SELECT c.id, c.item_id, c.claim_date, c.verification_code,
		        c.owner_first_name, c.owner_last_name, c.verification_status, c.handled_by,
		        i.name, i.category, i.found_at,
		        COALESCE(e.first_name || ' ' || e.last_name, 'Unassigned')
		 FROM claims c
		 JOIN items i ON i.id = c.item_id
		 LEFT JOIN employees e ON e.id = c.handled_by
		 WHERE c.id = ?`, id,
	).Scan(&c.ID, &c.ItemID, &c.ClaimDate, &c.VerificationCode,
		&c.OwnerFirstName, &c.OwnerLastName, &c.VerificationStatus, &c.HandledBy,
		&c.ItemName, &c.ItemCategory, &c.FoundAt, &c.HandlerName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting claim: %w", err)
	}
	return c, nil
}

// ListPendingClaims returns pending claims joined with their item and
// handling staff ("Unassigned" when none), newest first.
func ListPendingClaims(ctx context.Context, db *sql.DB) ([]model.Claim, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT c.id, c.item_id, c.claim_date, c.verification_code,
		        c.owner_first_name, c.owner_last_name, c.verification_status, c.handled_by,
		        i.name, i.category, i.found_at,
		        COALESCE(e.first_name || ' ' || e.last_name, 'Unassigned')
		 FROM claims c
		 JOIN items i ON i.id = c.item_id
		 LEFT JOIN employees e ON e.id = c.handled_by
		 WHERE c.verification_status = ?
		 ORDER BY c.claim_date DESC, c.id DESC`,
		model.ClaimPending,
	)
	if err != nil {
		return nil, fmt.Errorf("listing pending claims: %w", err)
	}
	defer rows.Close()

	var claims []model.Claim
	for rows.Next() {
		var c model.Claim
		if err := rows.Scan(&c.ID, &c.ItemID, &c.ClaimDate, &c.VerificationCode,
			&c.OwnerFirstName, &c.OwnerLastName, &c.VerificationStatus, &c.HandledBy,
			&c.ItemName, &c.ItemCategory, &c.FoundAt, &c.HandlerName); err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
