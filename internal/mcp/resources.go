// ABOUTME: MCP resource implementations for life logs.
// ABOUTME: Provides lifedash://dashboard, lifedash://recent, and lifedash://today.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// lifedash://dashboard - scores and insights
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifedash://dashboard",
		Name:        "Life Dashboard",
		Description: "Domain scores, overall score, and correlation insights",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)

	// lifedash://recent - last entries across all domains
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifedash://recent",
		Name:        "Recent Life Logs",
		Description: "Last 10 logs per domain plus recent inbox items",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// lifedash://today - everything logged for today's date
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lifedash://today",
		Name:        "Today's Logs",
		Description: "All domain logs recorded for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := dashboard.Build(s.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return jsonResource("lifedash://dashboard", data)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	body, err := s.repo.ListBodyLogs(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list body logs: %w", err)
	}
	mind, err := s.repo.ListMindLogs(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list mind logs: %w", err)
	}
	finance, err := s.repo.ListFinanceLogs(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list finance logs: %w", err)
	}
	discipline, err := s.repo.ListDisciplineLogs(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list discipline logs: %w", err)
	}
	inbox, err := s.repo.ListInboxItems(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox: %w", err)
	}

	result := map[string]interface{}{
		"body":       body,
		"mind":       mind,
		"finance":    finance,
		"discipline": discipline,
		"inbox":      inbox,
	}
	return jsonResource("lifedash://recent", result)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := time.Now().Format(time.DateOnly)
	result := map[string]interface{}{"date": today}

	body, err := s.repo.ListBodyLogs(1)
	if err != nil {
		return nil, err
	}
	if len(body) > 0 && body[0].Date == today {
		result["body"] = body[0]
	}

	mind, err := s.repo.ListMindLogs(1)
	if err != nil {
		return nil, err
	}
	if len(mind) > 0 && mind[0].Date == today {
		result["mind"] = mind[0]
	}

	finance, err := s.repo.ListFinanceLogs(1)
	if err != nil {
		return nil, err
	}
	if len(finance) > 0 && finance[0].Date == today {
		result["finance"] = finance[0]
	}

	discipline, err := s.repo.ListDisciplineLogs(0)
	if err != nil {
		return nil, err
	}
	var todayDiscipline []interface{}
	for _, l := range discipline {
		if l.Date == today {
			todayDiscipline = append(todayDiscipline, l)
		}
	}
	if len(todayDiscipline) > 0 {
		result["discipline"] = todayDiscipline
	}

	return jsonResource("lifedash://today", result)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
