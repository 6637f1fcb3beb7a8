// ABOUTME: MCP tool implementations for life logs.
// ABOUTME: Exposes upserts, projects, inbox, and the dashboard as tools.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/harperreed/lifedash/internal/models"
	"github.com/harperreed/lifedash/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_body
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_body",
		Description: "Record today's physical state (sleep, training, energy). One entry per day; logging a day again replaces it.",
	}, s.handleLogBody)

	// log_mind
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_mind",
		Description: "Record today's mental state (mood, anxiety, stress, focus). One entry per day; logging a day again replaces it.",
	}, s.handleLogMind)

	// log_finance
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_finance",
		Description: "Record today's finances (income, expenses, debts, installments). One entry per day; logging a day again replaces it.",
	}, s.handleLogFinance)

	// log_discipline
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_discipline",
		Description: "Record focused work on a project for a day. One entry per project per day.",
	}, s.handleLogDiscipline)

	// add_project
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_project",
		Description: "Create a project that discipline logs can reference",
	}, s.handleAddProject)

	// list_projects
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_projects",
		Description: "List all projects",
	}, s.handleListProjects)

	// inbox_add
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "inbox_add",
		Description: "Capture an idea, worry, thought, or task in the inbox",
	}, s.handleInboxAdd)

	// inbox_list
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "inbox_list",
		Description: "List recent inbox items",
	}, s.handleInboxList)

	// inbox_delete
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "inbox_delete",
		Description: "Delete an inbox item by ID or ID prefix",
	}, s.handleInboxDelete)

	// get_dashboard
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Get the life dashboard: recent logs, 0-100 domain scores, overall score, and correlation insights",
	}, s.handleGetDashboard)

	// list_logs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_logs",
		Description: "List recent logs for one domain (body, mind, finance, discipline)",
	}, s.handleListLogs)
}

// Tool input/output types

type logBodyInput struct {
	Date          string  `json:"date" jsonschema:"Day being logged (YYYY-MM-DD)"`
	SleepHours    float64 `json:"sleep_hours" jsonschema:"Hours slept"`
	SleepQuality  int     `json:"sleep_quality" jsonschema:"Sleep quality 1-5"`
	TrainingDone  bool    `json:"training_done,omitempty" jsonschema:"Whether a training session happened"`
	TrainingType  string  `json:"training_type,omitempty" jsonschema:"Kind of training (run, lift, yoga, ...)"`
	EnergyLevel   int     `json:"energy_level" jsonschema:"Energy level 1-5"`
	ActivityLevel int     `json:"activity_level" jsonschema:"Activity level 1-5"`
}

type logMindInput struct {
	Date    string `json:"date" jsonschema:"Day being logged (YYYY-MM-DD)"`
	Mood    int    `json:"mood" jsonschema:"Mood 1-5"`
	Anxiety int    `json:"anxiety" jsonschema:"Anxiety 1-5 (higher is worse)"`
	Stress  int    `json:"stress" jsonschema:"Stress 1-5 (higher is worse)"`
	Focus   int    `json:"focus" jsonschema:"Focus 1-5"`
	Journal string `json:"journal,omitempty" jsonschema:"Free-form journal text"`
}

type logFinanceInput struct {
	Date         string  `json:"date" jsonschema:"Day being logged (YYYY-MM-DD)"`
	Income       float64 `json:"income" jsonschema:"Income for the day"`
	Expenses     float64 `json:"expenses,omitempty" jsonschema:"Expenses for the day"`
	Debts        float64 `json:"debts,omitempty" jsonschema:"Outstanding debt total"`
	Installments float64 `json:"installments,omitempty" jsonschema:"Installment payments due"`
}

type logDisciplineInput struct {
	Date            string `json:"date" jsonschema:"Day being logged (YYYY-MM-DD)"`
	Project         string `json:"project" jsonschema:"Project name, ID, or ID prefix"`
	MinutesInvested int    `json:"minutes_invested" jsonschema:"Minutes of focused work"`
	FocusLevel      int    `json:"focus_level" jsonschema:"Focus level 1-5"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addProjectInput struct {
	Name            string  `json:"name" jsonschema:"Project name"`
	WeeklyGoalHours float64 `json:"weekly_goal_hours,omitempty" jsonschema:"Weekly goal in hours"`
}

type projectOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type inboxAddInput struct {
	Content string `json:"content" jsonschema:"What to capture"`
	Type    string `json:"type" jsonschema:"One of idea, worry, thought, task"`
}

type inboxListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type inboxDeleteInput struct {
	ID string `json:"id" jsonschema:"Inbox item ID or prefix"`
}

type listLogsInput struct {
	Domain string `json:"domain" jsonschema:"One of body, mind, finance, discipline"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

// Tool handlers

func (s *Server) handleLogBody(ctx context.Context, req *mcp.CallToolRequest, input logBodyInput) (*mcp.CallToolResult, simpleOutput, error) {
	l := &models.BodyLog{
		Date:          input.Date,
		SleepHours:    input.SleepHours,
		SleepQuality:  input.SleepQuality,
		TrainingDone:  input.TrainingDone,
		TrainingType:  input.TrainingType,
		EnergyLevel:   input.EnergyLevel,
		ActivityLevel: input.ActivityLevel,
	}
	if err := s.repo.UpsertBodyLog(l); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log body: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged body for %s (%.1fh sleep, quality %d)", l.Date, l.SleepHours, l.SleepQuality),
	}, nil
}

func (s *Server) handleLogMind(ctx context.Context, req *mcp.CallToolRequest, input logMindInput) (*mcp.CallToolResult, simpleOutput, error) {
	l := &models.MindLog{
		Date:    input.Date,
		Mood:    input.Mood,
		Anxiety: input.Anxiety,
		Stress:  input.Stress,
		Focus:   input.Focus,
		Journal: input.Journal,
	}
	if err := s.repo.UpsertMindLog(l); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log mind: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged mind for %s (mood %d, focus %d)", l.Date, l.Mood, l.Focus),
	}, nil
}

func (s *Server) handleLogFinance(ctx context.Context, req *mcp.CallToolRequest, input logFinanceInput) (*mcp.CallToolResult, simpleOutput, error) {
	l := &models.FinanceLog{
		Date:         input.Date,
		Income:       input.Income,
		Expenses:     input.Expenses,
		Debts:        input.Debts,
		Installments: input.Installments,
	}
	if err := s.repo.UpsertFinanceLog(l); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log finance: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged finance for %s", l.Date),
	}, nil
}

func (s *Server) handleLogDiscipline(ctx context.Context, req *mcp.CallToolRequest, input logDisciplineInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := storage.ResolveProject(s.repo, input.Project)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	l := &models.DisciplineLog{
		Date:            input.Date,
		ProjectID:       p.ID,
		MinutesInvested: input.MinutesInvested,
		FocusLevel:      input.FocusLevel,
	}
	if err := s.repo.UpsertDisciplineLog(l); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log discipline: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %d min on %s for %s", l.MinutesInvested, p.Name, l.Date),
	}, nil
}

func (s *Server) handleAddProject(ctx context.Context, req *mcp.CallToolRequest, input addProjectInput) (*mcp.CallToolResult, projectOutput, error) {
	p := models.NewProject(input.Name, input.WeeklyGoalHours)
	if err := s.repo.CreateProject(p); err != nil {
		return nil, projectOutput{}, fmt.Errorf("failed to create project: %w", err)
	}
	return nil, projectOutput{
		ID:      p.ID.String()[:8],
		Name:    p.Name,
		Message: fmt.Sprintf("Created project %s (ID: %s)", p.Name, p.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListProjects(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	projects, err := s.repo.ListProjects()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		return nil, map[string]interface{}{"message": "No projects found."}, nil
	}
	return nil, projects, nil
}

func (s *Server) handleInboxAdd(ctx context.Context, req *mcp.CallToolRequest, input inboxAddInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidInboxItemType(input.Type) {
		return nil, simpleOutput{}, fmt.Errorf("unknown inbox type: %s (want idea, worry, thought, or task)", input.Type)
	}

	i := models.NewInboxItem(input.Content, models.InboxItemType(input.Type))
	if err := s.repo.CreateInboxItem(i); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add inbox item: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Captured %s (ID: %s)", input.Type, i.ID.String()[:8]),
	}, nil
}

func (s *Server) handleInboxList(ctx context.Context, req *mcp.CallToolRequest, input inboxListInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	items, err := s.repo.ListInboxItems(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list inbox: %w", err)
	}
	if len(items) == 0 {
		return nil, map[string]interface{}{"message": "Inbox is empty."}, nil
	}
	return nil, items, nil
}

func (s *Server) handleInboxDelete(ctx context.Context, req *mcp.CallToolRequest, input inboxDeleteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteInboxItem(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete inbox item: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted inbox item: %s", input.ID),
	}, nil
}

func (s *Server) handleGetDashboard(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	data, err := dashboard.Build(s.repo)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	if data.Empty() {
		return nil, map[string]interface{}{"message": "Nothing logged yet. Log a day in any domain to see scores."}, nil
	}
	return nil, data, nil
}

func (s *Server) handleListLogs(ctx context.Context, req *mcp.CallToolRequest, input listLogsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	switch input.Domain {
	case "body":
		logs, err := s.repo.ListBodyLogs(input.Limit)
		return nil, logs, err
	case "mind":
		logs, err := s.repo.ListMindLogs(input.Limit)
		return nil, logs, err
	case "finance":
		logs, err := s.repo.ListFinanceLogs(input.Limit)
		return nil, logs, err
	case "discipline":
		logs, err := s.repo.ListDisciplineLogs(input.Limit)
		return nil, logs, err
	default:
		return nil, nil, fmt.Errorf("unknown domain: %s (want body, mind, finance, or discipline)", input.Domain)
	}
}
