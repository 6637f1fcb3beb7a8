// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "lifedash.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleLogBody(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, out, err := server.handleLogBody(ctx, nil, logBodyInput{
		Date:          "2026-02-10",
		SleepHours:    7.5,
		SleepQuality:  4,
		EnergyLevel:   4,
		ActivityLevel: 3,
	})
	if err != nil {
		t.Fatalf("handleLogBody failed: %v", err)
	}
	if !strings.Contains(out.Message, "2026-02-10") {
		t.Errorf("unexpected message: %s", out.Message)
	}

	logs, err := db.ListBodyLogs(0)
	if err != nil || len(logs) != 1 {
		t.Fatalf("expected 1 stored log, got %d (err %v)", len(logs), err)
	}
}

func TestHandleLogBodyRejectsInvalid(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, _, err := server.handleLogBody(ctx, nil, logBodyInput{
		Date:          "2026-02-10",
		SleepHours:    7.5,
		SleepQuality:  9,
		EnergyLevel:   4,
		ActivityLevel: 3,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestHandleLogDiscipline(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, pout, err := server.handleAddProject(ctx, nil, addProjectInput{Name: "writing", WeeklyGoalHours: 5})
	if err != nil {
		t.Fatalf("handleAddProject failed: %v", err)
	}
	if pout.Name != "writing" {
		t.Errorf("project name = %s, want writing", pout.Name)
	}

	_, out, err := server.handleLogDiscipline(ctx, nil, logDisciplineInput{
		Date:            "2026-02-10",
		Project:         "writing",
		MinutesInvested: 90,
		FocusLevel:      4,
	})
	if err != nil {
		t.Fatalf("handleLogDiscipline failed: %v", err)
	}
	if !strings.Contains(out.Message, "writing") {
		t.Errorf("unexpected message: %s", out.Message)
	}

	// Unknown project is a reference error
	_, _, err = server.handleLogDiscipline(ctx, nil, logDisciplineInput{
		Date:            "2026-02-10",
		Project:         "nope",
		MinutesInvested: 30,
		FocusLevel:      2,
	})
	if err == nil {
		t.Fatal("expected error for unknown project")
	}
}

func TestHandleGetDashboardEmpty(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, out, err := server.handleGetDashboard(ctx, nil, struct{}{})
	if err != nil {
		t.Fatalf("handleGetDashboard failed: %v", err)
	}

	msg, ok := out.(map[string]interface{})
	if !ok || msg["message"] == nil {
		t.Errorf("expected empty-state message, got %+v", out)
	}
}

func TestHandleInboxAddAndDelete(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, out, err := server.handleInboxAdd(ctx, nil, inboxAddInput{Content: "an idea", Type: "idea"})
	if err != nil {
		t.Fatalf("handleInboxAdd failed: %v", err)
	}
	if !strings.Contains(out.Message, "idea") {
		t.Errorf("unexpected message: %s", out.Message)
	}

	if _, _, err := server.handleInboxAdd(ctx, nil, inboxAddInput{Content: "x", Type: "rant"}); err == nil {
		t.Error("expected error for unknown inbox type")
	}

	items, err := db.ListInboxItems(0)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 inbox item, got %d (err %v)", len(items), err)
	}

	_, _, err = server.handleInboxDelete(ctx, nil, inboxDeleteInput{ID: items[0].ID.String()[:8]})
	if err != nil {
		t.Fatalf("handleInboxDelete failed: %v", err)
	}
}

func TestHandleListLogsUnknownDomain(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	if _, _, err := server.handleListLogs(ctx, nil, listLogsInput{Domain: "spirit"}); err == nil {
		t.Error("expected error for unknown domain")
	}
}

func TestDashboardResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	if err := db.UpsertMindLog(&models.MindLog{Date: "2026-02-10", Mood: 4, Anxiety: 2, Stress: 2, Focus: 4}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	result, err := server.handleDashboardResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleDashboardResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(result.Contents))
	}
	if !strings.Contains(result.Contents[0].Text, "scores") {
		t.Errorf("expected scores in resource payload: %s", result.Contents[0].Text)
	}
}
