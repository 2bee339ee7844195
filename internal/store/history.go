package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/founddesk/founddesk/internal/model"
)

// GetItemHistory returns an item's status events, newest first.
func GetItemHistory(ctx context.Context, db *sql.DB, itemID int64) ([]model.StatusEvent, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_id, status, status_date
		 FROM item_status
		 WHERE item_id = ?
		 ORDER BY status_date DESC, id DESC`, itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting item history: %w", err)
	}
	defer rows.Close()

	var events []model.StatusEvent
	for rows.Next() {
		var ev model.StatusEvent
		if err := rows.Scan(&ev.ID, &ev.ItemID, &ev.Status, &ev.StatusDate); err != nil {
			return nil, fmt.Errorf("scanning status event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
