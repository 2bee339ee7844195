package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/founddesk/founddesk/internal/model"
)

// GetDashboardMetrics summarizes current desk state. All counters are
// computed on read; there is no caching.
func GetDashboardMetrics(ctx context.Context, db *sql.DB) (*model.DashboardMetrics, error) {
	m := &model.DashboardMetrics{}

	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE claim_state = ?),
		        COUNT(*) FILTER (WHERE claim_state = ?),
		        COALESCE(AVG(julianday('now') - julianday(date_found)) FILTER (WHERE claim_state = ?), 0)
		 FROM items`,
		model.ClaimStateUnclaimed, model.ClaimStateClaimed, model.ClaimStateUnclaimed,
	).Scan(&m.TotalItems, &m.TotalUnclaimed, &m.TotalClaimed, &m.AvgDaysUnclaimed)
	if err != nil {
		return nil, fmt.Errorf("computing item metrics: %w", err)
	}

	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FILTER (WHERE verification_status = ?),
		        COUNT(*) FILTER (WHERE verification_status = ?)
		 FROM claims`,
		model.ClaimPending, model.ClaimApproved,
	).Scan(&m.PendingClaims, &m.ApprovedClaims)
	if err != nil {
		return nil, fmt.Errorf("computing claim metrics: %w", err)
	}

	return m, nil
}

// GetEmployeePerformance returns per-employee claim counters, most
// items managed first.
func GetEmployeePerformance(ctx context.Context, db *sql.DB) ([]model.EmployeePerformance, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT e.id, e.first_name, e.last_name, e.position, e.items_managed,
		        COUNT(c.id),
		        COUNT(c.id) FILTER (WHERE c.verification_status = ?),
		        COUNT(c.id) FILTER (WHERE c.verification_status = ?)
		 FROM employees e
		 LEFT JOIN claims c ON c.handled_by = e.id
		 GROUP BY e.id
		 ORDER BY e.items_managed DESC, e.id`,
		model.ClaimApproved, model.ClaimPending,
	)
	if err != nil {
		return nil, fmt.Errorf("computing employee performance: %w", err)
	}
	defer rows.Close()

	var perf []model.EmployeePerformance
	for rows.Next() {
		var p model.EmployeePerformance
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Position, &p.ItemsManaged,
			&p.ClaimsHandled, &p.ApprovedCount, &p.PendingCount); err != nil {
			return nil, fmt.Errorf("scanning employee performance: %w", err)
		}
		perf = append(perf, p)
	}
	return perf, rows.Err()
}

// FindDisputedItems returns items with more than one pending claim,
// with the claimant names concatenated.
func FindDisputedItems(ctx context.Context, db *sql.DB) ([]model.DisputedItem, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT i.id, i.name, i.category, i.found_at,
		        COUNT(c.id),
		        GROUP_CONCAT(c.owner_first_name || ' ' || c.owner_last_name, ', ')
		 FROM items i
		 JOIN claims c ON c.item_id = i.id AND c.verification_status = ?
		 GROUP BY i.id
		 HAVING COUNT(c.id) > 1
		 ORDER BY COUNT(c.id) DESC, i.id`,
		model.ClaimPending,
	)
	if err != nil {
		return nil, fmt.Errorf("finding disputed items: %w", err)
	}
	defer rows.Close()

	var disputed []model.DisputedItem
	for rows.Next() {
		var d model.DisputedItem
		if err := rows.Scan(&d.ItemID, &d.ItemName, &d.Category, &d.FoundAt, &d.ClaimCount, &d.Claimants); err != nil {
			return nil, fmt.Errorf("scanning disputed item: %w", err)
		}
		disputed = append(disputed, d)
	}
	return disputed, rows.Err()
}
