package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/genostudio/genotasks/internal/core"
	"github.com/genostudio/genotasks/pkg/models"
)

// memStore is a minimal in-memory core.TaskStore.
type memStore struct {
	tasks []models.Task
}

func (s *memStore) Load() ([]models.Task, error) {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *memStore) Save(tasks []models.Task) error {
	s.tasks = make([]models.Task, len(tasks))
	copy(s.tasks, tasks)
	return nil
}

const testWeek = "05/01/26 - 09/01/26"

func seededServer(tasks ...models.Task) (*Server, *memStore) {
	store := &memStore{tasks: tasks}
	return NewServer(core.NewBoardManager(store, nil), "test"), store
}

func sampleTask() models.Task {
	return models.Task{
		ID:           "11111111-aaaa-bbbb-cccc-222222222222",
		Week:         testWeek,
		Area:         models.AreaProduccion,
		Priority:     models.PriorityUrgente,
		Title:        "Banner promo",
		Requester:    "Ana",
		Responsible:  models.TeamCore,
		BasecampLink: "https://3.basecamp.com/123",
		Status:       models.StatusActiva,
		Comments: []models.Comment{
			{ID: "c1", Author: "Head", Timestamp: time.Date(2026, 1, 6, 18, 0, 0, 0, time.UTC), Text: "Revisar copy"},
		},
		CreatedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}

func assertToolError(t *testing.T, result *gomcp.CallToolResult, fragment string) {
	t.Helper()
	if result == nil || !result.IsError {
		t.Fatalf("result = %+v, want an error result", result)
	}
	text, ok := result.Content[0].(*gomcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want TextContent", result.Content[0])
	}
	if !strings.Contains(text.Text, fragment) {
		t.Errorf("error %q does not mention %q", text.Text, fragment)
	}
}

func TestHandleGetTask(t *testing.T) {
	task := sampleTask()
	s, _ := seededServer(task)

	result, out, err := s.handleGetTask(context.Background(), nil, getTaskInput{TaskID: task.ID})
	if err != nil {
		t.Fatalf("handleGetTask: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if out.Title != "Banner promo" || out.Responsible != string(models.TeamCore) {
		t.Errorf("output = %+v", out)
	}
	if len(out.Comments) != 1 || out.Comments[0].Author != "Head" {
		t.Errorf("comments = %+v", out.Comments)
	}
}

func TestHandleGetTask_Missing(t *testing.T) {
	s, _ := seededServer()

	result, _, err := s.handleGetTask(context.Background(), nil, getTaskInput{TaskID: "nope"})
	if err != nil {
		t.Fatal(err)
	}
	assertToolError(t, result, "nope")

	result, _, err = s.handleGetTask(context.Background(), nil, getTaskInput{})
	if err != nil {
		t.Fatal(err)
	}
	assertToolError(t, result, "task_id")
}

func TestHandleListTasks_Filters(t *testing.T) {
	other := sampleTask()
	other.ID = "33333333-aaaa-bbbb-cccc-444444444444"
	other.Title = "Logo refresh"
	other.Area = models.AreaBranding
	other.Responsible = models.TeamUnassigned
	s, _ := seededServer(sampleTask(), other)

	result, out, err := s.handleListTasks(context.Background(), nil, listTasksInput{Area: "Branding"})
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if out.Count != 1 || out.Tasks[0].Title != "Logo refresh" {
		t.Errorf("output = %+v", out)
	}

	_, out, err = s.handleListTasks(context.Background(), nil, listTasksInput{Team: "core"})
	if err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || out.Tasks[0].Responsible != string(models.TeamCore) {
		t.Errorf("team filter output = %+v", out)
	}
}

func TestHandleCheckPriority(t *testing.T) {
	s, _ := seededServer(sampleTask())

	result, out, err := s.handleCheckPriority(context.Background(), nil, checkPriorityInput{
		Week: testWeek, Team: "core", Area: "Producción", Priority: "Urgente",
	})
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if out.Allowed {
		t.Error("second urgent task in the same scope must not be allowed")
	}
	if !strings.Contains(out.Message, "URGENTE") {
		t.Errorf("message = %q", out.Message)
	}

	_, out, err = s.handleCheckPriority(context.Background(), nil, checkPriorityInput{
		Week: testWeek, Team: "core", Area: "Producción", Priority: "Media",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Allowed {
		t.Errorf("Media must always be allowed: %+v", out)
	}
}

func TestHandleCheckPriority_InvalidPriority(t *testing.T) {
	s, _ := seededServer()
	result, _, err := s.handleCheckPriority(context.Background(), nil, checkPriorityInput{
		Week: testWeek, Team: "core", Area: "Producción", Priority: "Critical",
	})
	if err != nil {
		t.Fatal(err)
	}
	assertToolError(t, result, "Critical")
}

func TestHandleExportWeek(t *testing.T) {
	s, _ := seededServer(sampleTask())

	result, _, err := s.handleExportWeek(context.Background(), nil, exportWeekInput{})
	if err != nil {
		t.Fatal(err)
	}
	assertToolError(t, result, "week")

	result, out, err := s.handleExportWeek(context.Background(), nil, exportWeekInput{Week: testWeek})
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if !strings.Contains(out.Text, "SEMANA: "+testWeek) || !strings.Contains(out.Text, "- Tarea: Banner promo") {
		t.Errorf("export text:\n%s", out.Text)
	}
}

func TestHandleImportText(t *testing.T) {
	s, store := seededServer()

	result, _, err := s.handleImportText(context.Background(), nil, importTextInput{})
	if err != nil {
		t.Fatal(err)
	}
	assertToolError(t, result, "content")

	text := "SEMANA: " + testWeek + "\nAna:\n  Equipo: Core Performance\n  - Tarea: Banner promo\n    Prioridad: Alta\n"
	result, out, err := s.handleImportText(context.Background(), nil, importTextInput{Content: text})
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if out.Parsed != 1 || out.Added != 1 || out.Updated != 0 {
		t.Errorf("outcome = %+v", out)
	}
	if len(store.tasks) != 1 {
		t.Errorf("store has %d tasks after import", len(store.tasks))
	}
}
