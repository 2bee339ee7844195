package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/founddesk/founddesk/internal/model"
)

// CreateItem takes a found item into custody. The item starts unclaimed
// with date_found set to the current date, and an "Unclaimed" status
// event is appended in the same transaction.
func CreateItem(ctx context.Context, db *sql.DB, name, category, description, color, foundAt string) (*model.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name required", model.ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category required", model.ErrValidation)
	}
	if strings.TrimSpace(foundAt) == "" {
		return nil, fmt.Errorf("%w: found location required", model.ErrValidation)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO items (name, category, description, color, found_at) VALUES (?, ?, ?, ?, ?)`,
		name, category, description, color, foundAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO item_status (item_id, status) VALUES (?, ?)`,
		id, model.StatusUnclaimed,
	); err != nil {
		return nil, fmt.Errorf("recording intake status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item intake: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var description, color, photoMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, category, description, color, date_found, found_at, claim_state, photo_mime, date_updated
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.Category, &description, &color,
		&item.DateFound, &item.FoundAt, &item.ClaimState, &photoMime, &item.DateUpdated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Description = description.String
	item.Color = color.String
	item.PhotoMime = photoMime.String
	return item, nil
}

// ListUnclaimedItems returns unclaimed items matching the filter, newest
// finds first. Each item carries days_unclaimed (today - date_found).
func ListUnclaimedItems(ctx context.Context, db *sql.DB, filter model.ItemFilter) ([]model.Item, error) {
	query := `SELECT id, name, category, description, color, date_found, found_at, claim_state, photo_mime, date_updated,
	                 CAST(julianday('now') - julianday(date_found) AS INTEGER) AS days_unclaimed
	          FROM items
	          WHERE claim_state = ?`
	args := []any{model.ClaimStateUnclaimed}

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.Color != "" {
		query += ` AND color = ?`
		args = append(args, filter.Color)
	}
	if filter.Location != "" {
		query += ` AND found_at = ?`
		args = append(args, filter.Location)
	}
	if !filter.FoundAfter.IsZero() {
		query += ` AND date_found >= date(?)`
		args = append(args, filter.FoundAfter.Format("2006-01-02"))
	}
	if !filter.FoundBefore.IsZero() {
		query += ` AND date_found <= date(?)`
		args = append(args, filter.FoundBefore.Format("2006-01-02"))
	}
	if filter.Search != "" {
		query += ` AND (name LIKE ? OR description LIKE ?)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	query += ` ORDER BY date_found DESC, id DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing unclaimed items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description, color, photoMime sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &description, &color,
			&item.DateFound, &item.FoundAt, &item.ClaimState, &photoMime, &item.DateUpdated,
			&item.DaysUnclaimed); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Description = description.String
		item.Color = color.String
		item.PhotoMime = photoMime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem updates an item's intake metadata and refreshes date_updated.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, name, category, description, color, foundAt string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name required", model.ErrValidation)
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category required", model.ErrValidation)
	}
	if strings.TrimSpace(foundAt) == "" {
		return fmt.Errorf("%w: found location required", model.ErrValidation)
	}

	result, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, category = ?, description = ?, color = ?, found_at = ?,
		        date_updated = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		name, category, description, color, foundAt, id,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: item %d", model.ErrNotFound, id)
	}
	return nil
}

// DeleteItem removes an item and, by cascade, its claims and status
// events. A claimed item cannot be deleted.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var state string
	err = tx.QueryRowContext(ctx,
		`SELECT claim_state FROM items WHERE id = ?`, id,
	).Scan(&state)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: item %d", model.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("checking item state: %w", err)
	}
	if state == model.ClaimStateClaimed {
		return fmt.Errorf("%w: claimed items cannot be deleted", model.ErrConflict)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item deletion: %w", err)
	}
	return nil
}

// SetItemPhoto stores an item's processed photo and refreshes date_updated.
func SetItemPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET photo = ?, photo_mime = ?, date_updated = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item photo: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking photo update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: item %d", model.ErrNotFound, id)
	}
	return nil
}

// GetItemPhoto returns an item's photo data and MIME type.
func GetItemPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM items WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item photo: %w", err)
	}
	return photo, mime.String, nil
}
