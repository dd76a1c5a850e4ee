package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/genostudio/genotasks/pkg/models"
)

// TaskStore is the persistence boundary the board needs: an opaque load and
// save of the whole task collection. Defining it here keeps core independent
// of the storage package.
type TaskStore interface {
	Load() ([]models.Task, error)
	Save(tasks []models.Task) error
}

// EventRecorder receives board lifecycle events. A nil recorder disables
// event recording; failures to record never affect board operations.
type EventRecorder interface {
	Record(eventType, message string, data map[string]any)
}

// Board event types.
const (
	EventTaskCreated   = "task.created"
	EventTaskUpdated   = "task.updated"
	EventTaskDeleted   = "task.deleted"
	EventCommentAdded  = "comment.added"
	EventImportMerged  = "import.merged"
	EventExportCreated = "export.generated"
	EventSaveFailed    = "store.save_failed"
)

// ValidationError is a user-facing rejection of a board operation: an empty
// title, a capacity limit, or a role restriction. The reason is surfaced to
// the user verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// requesterPendingHead marks tasks created by a Leader; the Head fills in
// the real requester later.
const requesterPendingHead = "Pendiente por Head"

// CreateTaskInput carries the fields of a new task. Week, Area, Priority,
// and Team must be set by the caller; Role determines the requester rules.
type CreateTaskInput struct {
	Role         models.UserRole
	Week         string
	Area         models.Area
	Priority     models.Priority
	Title        string
	Description  string
	Requester    string
	Team         models.Team
	BasecampLink string
	DeliveryDate string
}

// UpdateTaskInput carries an edit to an existing task. Nil fields are left
// untouched. Requester and Status changes require the Head role.
type UpdateTaskInput struct {
	Role         models.UserRole
	ID           string
	Title        *string
	Description  *string
	Requester    *string
	Team         *models.Team
	Priority     *models.Priority
	Status       *models.Status
	BasecampLink *string
	DeliveryDate *string
}

// ListFilter narrows the task listing. Zero-valued fields match everything;
// Search is a case-insensitive substring match over title and requester.
type ListFilter struct {
	Week   string
	Area   models.Area
	Team   models.Team
	Status models.Status
	Search string
}

// ImportOutcome summarizes an import. Parsed == 0 means no tasks were
// recognized in the text; Parsed > 0 with zero counts means the board was
// already up to date.
type ImportOutcome struct {
	Parsed  int
	Added   int
	Updated int
}

// BoardManager exposes the board operations of the host application: task
// lifecycle, comments, filtered listing, and the export/import workflow.
type BoardManager interface {
	CreateTask(input CreateTaskInput) (*models.Task, error)
	UpdateTask(input UpdateTaskInput) (*models.Task, error)
	DeleteTask(role models.UserRole, id string) error
	AddComment(id, author, text string) (*models.Task, error)
	GetTask(id string) (*models.Task, error)
	ListTasks(filter ListFilter) ([]models.Task, error)
	AllTasks() ([]models.Task, error)
	ExportWeek(week string) (string, error)
	ImportText(content string) (*ImportOutcome, error)
}

// boardManager implements BoardManager over an injected TaskStore. It holds
// no task state of its own: every operation loads the current collection,
// works on it, and persists the result.
type boardManager struct {
	store  TaskStore
	events EventRecorder
	now    func() time.Time
	newID  func() string
}

// NewBoardManager creates a BoardManager backed by the given store. events
// may be nil.
func NewBoardManager(store TaskStore, events EventRecorder) BoardManager {
	return &boardManager{
		store:  store,
		events: events,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// CreateTask validates and appends a new task. The status is derived from
// the Basecamp link: tasks without one start blocked. Leader-created tasks
// get the "Pendiente por Head" requester sentinel, since only Head knows
// who asked for the work.
func (bm *boardManager) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &ValidationError{Reason: "El título no puede estar vacío."}
	}

	tasks, err := bm.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	check := CheckPriorityLimit(tasks, input.Week, input.Team, input.Area, input.Priority, "")
	if !check.Allowed {
		return nil, &ValidationError{Reason: check.Message}
	}

	requester := input.Requester
	if input.Role == models.RoleLeader {
		requester = requesterPendingHead
	}

	status := models.StatusBloqueada
	if strings.TrimSpace(input.BasecampLink) != "" {
		status = models.StatusActiva
	}

	task := models.Task{
		ID:           bm.newID(),
		Week:         input.Week,
		Area:         input.Area,
		Priority:     input.Priority,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Requester:    requester,
		Responsible:  input.Team,
		BasecampLink: input.BasecampLink,
		Status:       status,
		CreatedAt:    bm.now(),
		DeliveryDate: input.DeliveryDate,
	}

	bm.persist(append(tasks, task))
	bm.record(EventTaskCreated, "task created", map[string]any{
		"id": task.ID, "title": task.Title, "week": task.Week, "team": string(task.Responsible),
	})
	return &task, nil
}

// UpdateTask applies an edit to a task, re-running the capacity check for
// the resulting (week, team, area, priority) tuple with the task excluded
// from its own count. On save the status is auto-corrected: a non-empty
// Basecamp link promotes Bloqueada to Activa, and an empty link always
// forces Bloqueada.
func (bm *boardManager) UpdateTask(input UpdateTaskInput) (*models.Task, error) {
	if input.Requester != nil && input.Role != models.RoleHead {
		return nil, &ValidationError{Reason: "Solo el rol Head puede modificar el solicitante."}
	}
	if input.Status != nil && input.Role != models.RoleHead {
		return nil, &ValidationError{Reason: "Solo el rol Head puede modificar el estado."}
	}

	tasks, err := bm.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	idx := indexByID(tasks, input.ID)
	if idx == -1 {
		return nil, fmt.Errorf("tarea %s no encontrada", input.ID)
	}

	task := tasks[idx]
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, &ValidationError{Reason: "El título no puede estar vacío."}
		}
		task.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Requester != nil {
		task.Requester = *input.Requester
	}
	if input.Team != nil {
		task.Responsible = *input.Team
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.BasecampLink != nil {
		task.BasecampLink = *input.BasecampLink
	}
	if input.DeliveryDate != nil {
		task.DeliveryDate = *input.DeliveryDate
	}

	check := CheckPriorityLimit(tasks, task.Week, task.Responsible, task.Area, task.Priority, task.ID)
	if !check.Allowed {
		return nil, &ValidationError{Reason: check.Message}
	}

	if strings.TrimSpace(task.BasecampLink) != "" {
		if task.Status == models.StatusBloqueada {
			task.Status = models.StatusActiva
		}
	} else {
		task.Status = models.StatusBloqueada
	}

	tasks[idx] = task
	bm.persist(tasks)
	bm.record(EventTaskUpdated, "task updated", map[string]any{"id": task.ID, "title": task.Title})
	return &task, nil
}

// DeleteTask removes a task. Only the Head role may delete.
func (bm *boardManager) DeleteTask(role models.UserRole, id string) error {
	if role != models.RoleHead {
		return &ValidationError{Reason: "Solo el rol Head puede eliminar tareas."}
	}

	tasks, err := bm.store.Load()
	if err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	idx := indexByID(tasks, id)
	if idx == -1 {
		return fmt.Errorf("tarea %s no encontrada", id)
	}

	bm.persist(append(tasks[:idx], tasks[idx+1:]...))
	bm.record(EventTaskDeleted, "task deleted", map[string]any{"id": id})
	return nil
}

// AddComment appends a comment to a task. The author is the acting role or
// a display name.
func (bm *boardManager) AddComment(id, author, text string) (*models.Task, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Reason: "El comentario no puede estar vacío."}
	}

	tasks, err := bm.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	idx := indexByID(tasks, id)
	if idx == -1 {
		return nil, fmt.Errorf("tarea %s no encontrada", id)
	}

	tasks[idx].Comments = append(tasks[idx].Comments, models.Comment{
		ID:        bm.newID(),
		Author:    author,
		Timestamp: bm.now(),
		Text:      text,
	})

	task := tasks[idx]
	bm.persist(tasks)
	bm.record(EventCommentAdded, "comment added", map[string]any{"id": id, "author": author})
	return &task, nil
}

// GetTask returns the task with the given ID.
func (bm *boardManager) GetTask(id string) (*models.Task, error) {
	tasks, err := bm.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	idx := indexByID(tasks, id)
	if idx == -1 {
		return nil, fmt.Errorf("tarea %s no encontrada", id)
	}
	task := tasks[idx]
	return &task, nil
}

// ListTasks returns the tasks matching the filter, in board display order.
func (bm *boardManager) ListTasks(filter ListFilter) ([]models.Task, error) {
	tasks, err := bm.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	search := strings.ToLower(filter.Search)
	var matched []models.Task
	for _, t := range tasks {
		if filter.Week != "" && t.Week != filter.Week {
			continue
		}
		if filter.Area != "" && t.Area != filter.Area {
			continue
		}
		if filter.Team != "" && t.Responsible != filter.Team {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Requester), search) {
			continue
		}
		matched = append(matched, t)
	}

	return SortTasks(matched), nil
}

// AllTasks returns the full collection, unsorted.
func (bm *boardManager) AllTasks() ([]models.Task, error) {
	tasks, err := bm.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return tasks, nil
}

// ExportWeek renders the export text for the given week, pre-sorting the
// collection so the grouping order is stable.
func (bm *boardManager) ExportWeek(week string) (string, error) {
	if week == "" {
		return "", &ValidationError{Reason: "Por favor selecciona una semana para exportar."}
	}
	tasks, err := bm.store.Load()
	if err != nil {
		return "", fmt.Errorf("loading tasks: %w", err)
	}
	text := ExportText(week, SortTasks(tasks), bm.now)
	bm.record(EventExportCreated, "export generated", map[string]any{"week": week})
	return text, nil
}

// ImportText parses export-formatted text and merges the result into the
// collection. Imported tasks are not run through the capacity check, so an
// import can leave a scope temporarily over capacity.
func (bm *boardManager) ImportText(content string) (*ImportOutcome, error) {
	parsed := ParseImportText(content)
	if len(parsed) == 0 {
		return &ImportOutcome{}, nil
	}

	tasks, err := bm.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	merged, result := MergeTasks(tasks, parsed)
	if result.Added > 0 || result.Updated > 0 {
		bm.persist(merged)
	}

	bm.record(EventImportMerged, "import merged", map[string]any{
		"parsed": len(parsed), "added": result.Added, "updated": result.Updated,
	})
	return &ImportOutcome{Parsed: len(parsed), Added: result.Added, Updated: result.Updated}, nil
}

// persist saves the collection. Save failures are swallowed so the board
// stays usable without persistence; they are still recorded as events.
func (bm *boardManager) persist(tasks []models.Task) {
	if err := bm.store.Save(tasks); err != nil {
		bm.record(EventSaveFailed, err.Error(), nil)
	}
}

func (bm *boardManager) record(eventType, message string, data map[string]any) {
	if bm.events != nil {
		bm.events.Record(eventType, message, data)
	}
}

func indexByID(tasks []models.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
