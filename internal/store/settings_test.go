package store

import (
	"context"
	"testing"

	"github.com/founddesk/founddesk/internal/db"
)

func TestSettingsRoundtrip(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	value, err := GetSetting(ctx, database, "missing")
	if err != nil {
		t.Fatalf("GetSetting: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value for unset key, got %q", value)
	}

	if err := SetSetting(ctx, database, "history_retention_days", "30"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if err := SetSetting(ctx, database, "history_retention_days", "60"); err != nil {
		t.Fatalf("SetSetting overwrite: %v", err)
	}

	value, _ = GetSetting(ctx, database, "history_retention_days")
	if value != "60" {
		t.Errorf("expected overwritten value '60', got %q", value)
	}
}

func TestHistoryRetentionDays(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	days, err := HistoryRetentionDays(ctx, database)
	if err != nil {
		t.Fatalf("HistoryRetentionDays: %v", err)
	}
	if days != DefaultHistoryRetentionDays {
		t.Errorf("expected default %d, got %d", DefaultHistoryRetentionDays, days)
	}

	SetSetting(ctx, database, "history_retention_days", "30")
	if days, _ = HistoryRetentionDays(ctx, database); days != 30 {
		t.Errorf("expected 30, got %d", days)
	}

	// Malformed values fall back to the default.
	SetSetting(ctx, database, "history_retention_days", "soon")
	if days, _ = HistoryRetentionDays(ctx, database); days != DefaultHistoryRetentionDays {
		t.Errorf("expected fallback to default for malformed value, got %d", days)
	}
	SetSetting(ctx, database, "history_retention_days", "-5")
	if days, _ = HistoryRetentionDays(ctx, database); days != DefaultHistoryRetentionDays {
		t.Errorf("expected fallback to default for negative value, got %d", days)
	}
}

func TestPruneHistory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")

	// Backdate the intake event past the retention window, then add a
	// newer event by approving a claim.
	if _, err := database.Exec(
		`UPDATE item_status SET status_date = datetime('now', '-400 days') WHERE item_id = ?`, item.ID,
	); err != nil {
		t.Fatal(err)
	}

	claim, _ := FileClaim(ctx, database, item.ID, "Ada", "Lovelace", "VX1")
	if _, _, err := ApproveClaim(ctx, database, claim.ID); err != nil {
		t.Fatalf("ApproveClaim: %v", err)
	}

	pruned, err := PruneHistory(ctx, database)
	if err != nil {
		t.Fatalf("PruneHistory: %v", err)
	}
	if pruned != 1 {
		t.Errorf("expected 1 pruned event, got %d", pruned)
	}

	history, _ := GetItemHistory(ctx, database, item.ID)
	if len(history) != 1 {
		t.Fatalf("expected 1 remaining event, got %d", len(history))
	}
}

func TestPruneHistoryKeepsLatestEvent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, "Wallet", "Accessories", "", "", "Gate 3")

	// Even an item whose only event is ancient keeps that event.
	if _, err := database.Exec(
		`UPDATE item_status SET status_date = datetime('now', '-400 days') WHERE item_id = ?`, item.ID,
	); err != nil {
		t.Fatal(err)
	}

	pruned, err := PruneHistory(ctx, database)
	if err != nil {
		t.Fatalf("PruneHistory: %v", err)
	}
	if pruned != 0 {
		t.Errorf("expected nothing pruned, got %d", pruned)
	}

	history, _ := GetItemHistory(ctx, database, item.ID)
	if len(history) != 1 {
		t.Errorf("expected the latest event to survive, got %d events", len(history))
	}
}
