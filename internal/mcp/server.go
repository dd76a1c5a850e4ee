// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the GenoTasks board as MCP tools for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genostudio/genotasks/internal/core"
	"github.com/genostudio/genotasks/pkg/models"
)

// Server wraps the board manager and exposes it as MCP tools.
type Server struct {
	server *gomcp.Server
	board  core.BoardManager
}

// NewServer creates an MCP server over the given board manager.
func NewServer(board core.BoardManager, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{board: board}
	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "genotasks", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskOutput struct {
	ID           string          `json:"id"`
	Week         string          `json:"week"`
	Area         string          `json:"area"`
	Priority     string          `json:"priority"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Requester    string          `json:"requester"`
	Responsible  string          `json:"responsible"`
	BasecampLink string          `json:"basecamp_link,omitempty"`
	Status       string          `json:"status"`
	DeliveryDate string          `json:"delivery_date,omitempty"`
	Created      string          `json:"created"`
	Comments     []commentOutput `json:"comments,omitempty"`
}

type commentOutput struct {
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

type getTaskInput struct {
	TaskID string `json:"task_id" jsonschema:"required,the unique task identifier"`
}

type listTasksInput struct {
	Week   string `json:"week,omitempty" jsonschema:"filter by week label, e.g. 05/01/26 - 09/01/26"`
	Area   string `json:"area,omitempty" jsonschema:"filter by area (Producción, Branding)"`
	Team   string `json:"team,omitempty" jsonschema:"filter by responsible team, fuzzy-matched against the team names"`
	Status string `json:"status,omitempty" jsonschema:"filter by status (Bloqueada (falta Basecamp), Activa, En progreso, Completada)"`
	Search string `json:"search,omitempty" jsonschema:"substring match over title and requester"`
}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type checkPriorityInput struct {
	Week     string `json:"week" jsonschema:"required,the week label the task belongs to"`
	Team     string `json:"team" jsonschema:"required,the responsible team, fuzzy-matched against the team names"`
	Area     string `json:"area" jsonschema:"required,the area (Producción or Branding)"`
	Priority string `json:"priority" jsonschema:"required,the priority to check (Urgente, Alta, Media, Baja)"`
}

type checkPriorityOutput struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

type exportWeekInput struct {
	Week string `json:"week" jsonschema:"required,the week label to export"`
}

type exportWeekOutput struct {
	Text string `json:"text"`
}

type importTextInput struct {
	Content string `json:"content" jsonschema:"required,export-formatted text to parse and merge into the board"`
}

type importTextOutput struct {
	Parsed  int `json:"parsed"`
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_task",
		Description: "Get a task by ID, including its comments.",
	}, s.handleGetTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List board tasks in display order, with optional week/area/team/status/search filters.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "check_priority",
		Description: "Check whether a task at the given priority fits under the per-week team capacity (1 Urgente, 2 Alta per area).",
	}, s.handleCheckPriority)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "export_week",
		Description: "Render a week's tasks as the plain-text export format.",
	}, s.handleExportWeek)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "import_text",
		Description: "Parse export-formatted text and merge the tasks into the board. Returns parsed/added/updated counts.",
	}, s.handleImportText)
}

// --- Tool handlers ---

func (s *Server) handleGetTask(_ context.Context, _ *gomcp.CallToolRequest, input getTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if input.TaskID == "" {
		return errorResult("task_id is required"), taskOutput{}, nil
	}

	task, err := s.board.GetTask(input.TaskID)
	if err != nil {
		return errorResult(fmt.Sprintf("getting task %s: %s", input.TaskID, err)), taskOutput{}, nil
	}
	return nil, taskToOutput(*task), nil
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, input listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	filter := core.ListFilter{
		Week:   input.Week,
		Area:   models.Area(input.Area),
		Status: models.Status(input.Status),
		Search: input.Search,
	}
	if input.Team != "" {
		filter.Team = models.LookupTeam(input.Team)
	}

	tasks, err := s.board.ListTasks(filter)
	if err != nil {
		return errorResult(fmt.Sprintf("listing tasks: %s", err)), listTasksOutput{}, nil
	}

	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleCheckPriority(_ context.Context, _ *gomcp.CallToolRequest, input checkPriorityInput) (*gomcp.CallToolResult, checkPriorityOutput, error) {
	priority, ok := models.ParsePriority(input.Priority)
	if !ok {
		return errorResult(fmt.Sprintf("invalid priority %q: must be one of Urgente, Alta, Media, Baja", input.Priority)), checkPriorityOutput{}, nil
	}

	tasks, err := s.board.AllTasks()
	if err != nil {
		return errorResult(fmt.Sprintf("loading tasks: %s", err)), checkPriorityOutput{}, nil
	}

	check := core.CheckPriorityLimit(tasks, input.Week, models.LookupTeam(input.Team), models.Area(input.Area), priority, "")
	return nil, checkPriorityOutput{Allowed: check.Allowed, Message: check.Message}, nil
}

func (s *Server) handleExportWeek(_ context.Context, _ *gomcp.CallToolRequest, input exportWeekInput) (*gomcp.CallToolResult, exportWeekOutput, error) {
	if input.Week == "" {
		return errorResult("week is required"), exportWeekOutput{}, nil
	}

	text, err := s.board.ExportWeek(input.Week)
	if err != nil {
		return errorResult(fmt.Sprintf("exporting week %s: %s", input.Week, err)), exportWeekOutput{}, nil
	}
	return nil, exportWeekOutput{Text: text}, nil
}

func (s *Server) handleImportText(_ context.Context, _ *gomcp.CallToolRequest, input importTextInput) (*gomcp.CallToolResult, importTextOutput, error) {
	if input.Content == "" {
		return errorResult("content is required"), importTextOutput{}, nil
	}

	outcome, err := s.board.ImportText(input.Content)
	if err != nil {
		return errorResult(fmt.Sprintf("importing: %s", err)), importTextOutput{}, nil
	}
	return nil, importTextOutput{Parsed: outcome.Parsed, Added: outcome.Added, Updated: outcome.Updated}, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	out := taskOutput{
		ID:           t.ID,
		Week:         t.Week,
		Area:         string(t.Area),
		Priority:     string(t.Priority),
		Title:        t.Title,
		Description:  t.Description,
		Requester:    t.Requester,
		Responsible:  string(t.Responsible),
		BasecampLink: t.BasecampLink,
		Status:       string(t.Status),
		DeliveryDate: t.DeliveryDate,
		Created:      t.CreatedAt.Format(time.RFC3339),
	}
	for _, c := range t.Comments {
		out.Comments = append(out.Comments, commentOutput{
			Author:    c.Author,
			Timestamp: c.Timestamp.Format(time.RFC3339),
			Text:      c.Text,
		})
	}
	return out
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
