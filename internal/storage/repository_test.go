// ABOUTME: Tests for Repository interface implementations.
// ABOUTME: Verifies upsert-by-date semantics and ordered reads using SQLite.
package storage

import (
	"path/filepath"
	"testing"

	"github.com/harperreed/lifedash/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}

func bodyLog(date string, sleepHours float64) *models.BodyLog {
	return &models.BodyLog{
		Date:          date,
		SleepHours:    sleepHours,
		SleepQuality:  3,
		TrainingDone:  false,
		EnergyLevel:   3,
		ActivityLevel: 3,
	}
}

func TestUpsertBodyLogReplacesSameDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := bodyLog("2026-02-10", 6)
	if err := db.UpsertBodyLog(first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second := bodyLog("2026-02-10", 8.5)
	second.TrainingDone = true
	second.TrainingType = "swim"
	if err := db.UpsertBodyLog(second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	logs, err := db.ListBodyLogs(0)
	if err != nil {
		t.Fatalf("ListBodyLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected exactly 1 log for the date, got %d", len(logs))
	}
	if logs[0].SleepHours != 8.5 {
		t.Errorf("SleepHours = %v, want 8.5 (second write wins)", logs[0].SleepHours)
	}
	if !logs[0].TrainingDone || logs[0].TrainingType != "swim" {
		t.Errorf("training fields not replaced: %+v", logs[0])
	}
}

func TestUpsertBodyLogRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	l := bodyLog("2026-02-10", 7)
	l.EnergyLevel = 0
	if err := db.UpsertBodyLog(l); err == nil {
		t.Fatal("expected validation error, got nil")
	}

	logs, err := db.ListBodyLogs(0)
	if err != nil {
		t.Fatalf("ListBodyLogs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("rejected log was stored: %d rows", len(logs))
	}
}

func TestListBodyLogsOrderAndLimit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for _, date := range []string{"2026-02-08", "2026-02-10", "2026-02-09"} {
		if err := db.UpsertBodyLog(bodyLog(date, 7)); err != nil {
			t.Fatalf("upsert %s failed: %v", date, err)
		}
	}

	logs, err := db.ListBodyLogs(2)
	if err != nil {
		t.Fatalf("ListBodyLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].Date != "2026-02-10" || logs[1].Date != "2026-02-09" {
		t.Errorf("wrong order: %s, %s", logs[0].Date, logs[1].Date)
	}
}

func TestListEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	logs, err := db.ListBodyLogs(30)
	if err != nil {
		t.Fatalf("empty store errored: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected empty slice, got %d rows", len(logs))
	}

	mind, err := db.ListMindLogs(30)
	if err != nil || len(mind) != 0 {
		t.Errorf("ListMindLogs on empty store: %d rows, err %v", len(mind), err)
	}
}

func TestUpsertMindLogReplacesSameDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	l := &models.MindLog{Date: "2026-02-10", Mood: 2, Anxiety: 4, Stress: 4, Focus: 2}
	if err := db.UpsertMindLog(l); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	l2 := &models.MindLog{Date: "2026-02-10", Mood: 4, Anxiety: 2, Stress: 2, Focus: 4, Journal: "better after a walk"}
	if err := db.UpsertMindLog(l2); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	logs, err := db.ListMindLogs(0)
	if err != nil {
		t.Fatalf("ListMindLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].Mood != 4 || logs[0].Journal != "better after a walk" {
		t.Errorf("second write did not win: %+v", logs[0])
	}
}

func TestUpsertFinanceLogReplacesSameDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.UpsertFinanceLog(&models.FinanceLog{Date: "2026-02-10", Income: 1000, Debts: 300}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := db.UpsertFinanceLog(&models.FinanceLog{Date: "2026-02-10", Income: 1200, Expenses: 800, Debts: 250, Installments: 50}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	logs, err := db.ListFinanceLogs(0)
	if err != nil {
		t.Fatalf("ListFinanceLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	if logs[0].Income != 1200 || logs[0].Debts != 250 {
		t.Errorf("second write did not win: %+v", logs[0])
	}
}

func TestCreateAndListProjects(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	p := models.NewProject("side-project", 8)
	if err := db.CreateProject(p); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	got, err := db.GetProject(p.ID)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if got.Name != "side-project" || got.WeeklyGoalHours != 8 {
		t.Errorf("project mismatch: %+v", got)
	}

	projects, err := db.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 1 {
		t.Errorf("expected 1 project, got %d", len(projects))
	}
}

func TestInboxAddListDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	i := models.NewInboxItem("renew passport", models.InboxTask)
	if err := db.CreateInboxItem(i); err != nil {
		t.Fatalf("CreateInboxItem failed: %v", err)
	}

	items, err := db.ListInboxItems(0)
	if err != nil {
		t.Fatalf("ListInboxItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Content != "renew passport" {
		t.Fatalf("unexpected items: %+v", items)
	}

	// Delete by 8-char prefix
	if err := db.DeleteInboxItem(i.ID.String()[:8]); err != nil {
		t.Fatalf("DeleteInboxItem failed: %v", err)
	}

	items, err = db.ListInboxItems(0)
	if err != nil {
		t.Fatalf("ListInboxItems after delete failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty inbox, got %d items", len(items))
	}
}

func TestResolveProject(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	p := models.NewProject("writing", 5)
	if err := db.CreateProject(p); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	byName, err := ResolveProject(db, "writing")
	if err != nil || byName.ID != p.ID {
		t.Errorf("resolve by name: %+v, err %v", byName, err)
	}

	byPrefix, err := ResolveProject(db, p.ID.String()[:8])
	if err != nil || byPrefix.ID != p.ID {
		t.Errorf("resolve by prefix: %+v, err %v", byPrefix, err)
	}

	byID, err := ResolveProject(db, p.ID.String())
	if err != nil || byID.ID != p.ID {
		t.Errorf("resolve by id: %+v, err %v", byID, err)
	}

	if _, err := ResolveProject(db, "nope"); err == nil {
		t.Error("expected error for unknown project")
	}
}

func TestDeleteInboxItemNotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.DeleteInboxItem("deadbeef"); err == nil {
		t.Error("expected error for unknown id")
	}
}
