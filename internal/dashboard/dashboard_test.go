// ABOUTME: Tests for dashboard aggregation against a real SQLite store.
// ABOUTME: Covers the empty state, scoring from latest logs, and insight wiring.
package dashboard

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}

func TestBuildEmptyState(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	data, err := Build(db)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !data.Empty() {
		t.Error("expected explicit empty state")
	}
	if data.Scores != nil {
		t.Errorf("Scores = %+v, want nil for empty store", data.Scores)
	}
	if len(data.Insights) != 0 {
		t.Errorf("expected no insights, got %+v", data.Insights)
	}
}

func TestBuildScoresFromLatestLogs(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// Older log that must not drive the score
	if err := db.UpsertBodyLog(&models.BodyLog{
		Date: "2026-02-09", SleepHours: 4, SleepQuality: 1, EnergyLevel: 1, ActivityLevel: 1,
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	// Latest: quality 5, energy 5, training done -> 100
	if err := db.UpsertBodyLog(&models.BodyLog{
		Date: "2026-02-10", SleepHours: 8, SleepQuality: 5, TrainingDone: true, EnergyLevel: 5, ActivityLevel: 4,
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	data, err := Build(db)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if data.Empty() {
		t.Fatal("expected scores with data present")
	}
	if data.Scores.Body != 100 {
		t.Errorf("Body = %d, want 100 from latest log", data.Scores.Body)
	}
	// Unlogged domains contribute zero, not an exclusion.
	if data.Scores.Mind != 0 || data.Scores.Finance != 0 || data.Scores.Discipline != 0 {
		t.Errorf("empty domains should score 0: %+v", data.Scores)
	}
	if data.Scores.Overall != 25 {
		t.Errorf("Overall = %d, want 25", data.Scores.Overall)
	}
}

func TestBuildDisciplineScore(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	p := models.NewProject("writing", 5)
	if err := db.CreateProject(p); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}
	p2 := models.NewProject("guitar", 3)
	if err := db.CreateProject(p2); err != nil {
		t.Fatalf("CreateProject failed: %v", err)
	}

	// Two projects on the latest date totalling 240 minutes -> 100
	for _, l := range []*models.DisciplineLog{
		{Date: "2026-02-10", ProjectID: p.ID, MinutesInvested: 180, FocusLevel: 4},
		{Date: "2026-02-10", ProjectID: p2.ID, MinutesInvested: 60, FocusLevel: 3},
		{Date: "2026-02-09", ProjectID: p.ID, MinutesInvested: 30, FocusLevel: 2},
	} {
		if err := db.UpsertDisciplineLog(l); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	data, err := Build(db)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if data.Scores.Discipline != 100 {
		t.Errorf("Discipline = %d, want 100 for 240 minutes", data.Scores.Discipline)
	}
}

func TestBuildEndToEndSleepFocusInsight(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// Six days of strictly increasing sleep with matching focus.
	for i := 0; i < 6; i++ {
		date := fmt.Sprintf("2026-02-%02d", i+1)
		if err := db.UpsertBodyLog(&models.BodyLog{
			Date: date, SleepHours: 5 + float64(i), SleepQuality: 3, EnergyLevel: 3, ActivityLevel: 3,
		}); err != nil {
			t.Fatalf("upsert body failed: %v", err)
		}
		if err := db.UpsertMindLog(&models.MindLog{
			Date: date, Mood: 3, Anxiety: 3, Stress: 3, Focus: 1 + i*4/5,
		}); err != nil {
			t.Fatalf("upsert mind failed: %v", err)
		}
	}

	data, err := Build(db)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(data.Insights) == 0 {
		t.Fatal("expected the sleep-focus insight to fire")
	}
	if data.Insights[0].Polarity != "positive" {
		t.Errorf("polarity = %s, want positive", data.Insights[0].Polarity)
	}
}
