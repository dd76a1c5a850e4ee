// Package internal provides the App struct that wires the GenoTasks
// components together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"

	"github.com/genostudio/genotasks/internal/cli"
	"github.com/genostudio/genotasks/internal/core"
	"github.com/genostudio/genotasks/internal/observability"
	"github.com/genostudio/genotasks/internal/storage"
	"github.com/genostudio/genotasks/pkg/models"
)

// App holds all service dependencies of the board.
type App struct {
	BasePath string

	ConfigMgr core.ConfigurationManager
	Config    *models.BoardConfig

	Store    storage.TaskStore
	Board    core.BoardManager
	EventLog observability.EventLog
}

// eventLogAdapter bridges the observability event log to the core
// EventRecorder interface.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) Record(eventType, message string, data map[string]any) {
	_ = a.log.Write(observability.Event{
		Type:    eventType,
		Message: message,
		Data:    data,
	})
}

// NewApp creates and wires all components. basePath is the directory
// holding the task file, the config file, and the event log.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	app.ConfigMgr = core.NewConfigurationManager(basePath)
	cfg, err := app.ConfigMgr.LoadBoardConfig()
	if err != nil {
		// Fall back to defaults on an unreadable config file.
		cfg = &models.BoardConfig{DataFile: "tareas.yaml", DefaultRole: models.RoleLeader}
	}
	app.Config = cfg

	app.Store = storage.NewTaskStore(filepath.Join(basePath, cfg.DataFile))

	// Non-fatal: the board runs without event recording if the log can't
	// be created.
	var recorder core.EventRecorder
	eventLog, logErr := observability.NewJSONLEventLog(filepath.Join(basePath, ".genotasks_events.jsonl"))
	if logErr == nil {
		app.EventLog = eventLog
		recorder = &eventLogAdapter{log: eventLog}
	}

	app.Board = core.NewBoardManager(app.Store, recorder)

	cli.Board = app.Board
	cli.Config = app.Config

	return app, nil
}

// ResolveBasePath returns the board's data directory: $GENOTASKS_HOME if
// set, otherwise ~/.genotasks (created on first use), otherwise the
// current directory.
func ResolveBasePath() string {
	if env := os.Getenv("GENOTASKS_HOME"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	base := filepath.Join(home, ".genotasks")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "."
	}
	return base
}
