package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// DefaultHistoryRetentionDays is used when no retention setting is stored.
const DefaultHistoryRetentionDays = 365

// historyRetentionKey is the settings key for the retention window.
const historyRetentionKey = "history_retention_days"

// GetSetting returns a setting value, or the empty string if unset.
func GetSetting(ctx context.Context, db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting setting %q: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a setting value, replacing any existing one.
func SetSetting(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return nil
}

// HistoryRetentionDays returns the configured status-history retention
// window, falling back to the default when unset or malformed.
func HistoryRetentionDays(ctx context.Context, db *sql.DB) (int, error) {
	value, err := GetSetting(ctx, db, historyRetentionKey)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return DefaultHistoryRetentionDays, nil
	}
	days, err := strconv.Atoi(value)
	if err != nil || days <= 0 {
		return DefaultHistoryRetentionDays, nil
	}
	return days, nil
}

// PruneHistory deletes status events older than the retention window.
// An item's most recent event is always kept so its current state stays
// reconstructable. Returns the number of deleted events.
func PruneHistory(ctx context.Context, db *sql.DB) (int64, error) {
	days, err := HistoryRetentionDays(ctx, db)
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx,
		`DELETE FROM item_status
		 WHERE status_date < datetime('now', ?)
		   AND id NOT IN (SELECT MAX(id) FROM item_status GROUP BY item_id)`,
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("pruning status history: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("checking prune result: %w", err)
	}
	return n, nil
}
