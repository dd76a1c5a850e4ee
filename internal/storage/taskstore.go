// Package storage provides the file-backed persistence for the GenoTasks
// board: a single YAML document holding the whole task collection.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/genostudio/genotasks/pkg/models"
)

// TaskFile is the top-level structure of the tasks YAML file.
type TaskFile struct {
	Version string        `yaml:"version"`
	Tasks   []models.Task `yaml:"tasks"`
}

// TaskStore loads and saves the full task collection. The collection is
// owned by the caller; the store never retains it between calls.
type TaskStore interface {
	Load() ([]models.Task, error)
	Save(tasks []models.Task) error
	Path() string
}

type fileTaskStore struct {
	path string
}

// NewTaskStore creates a TaskStore backed by the YAML file at path.
func NewTaskStore(path string) TaskStore {
	return &fileTaskStore{path: path}
}

// Load reads the task collection from disk. A missing or malformed file
// yields an empty collection rather than an error: the board must stay
// usable even when persistence is broken.
func (s *fileTaskStore) Load() ([]models.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, nil
	}

	var file TaskFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil
	}
	return file.Tasks, nil
}

// Save writes the full collection, replacing the previous file contents.
func (s *fileTaskStore) Save(tasks []models.Task) error {
	file := TaskFile{Version: "1.0", Tasks: tasks}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("marshalling tasks: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Path returns the location of the backing file.
func (s *fileTaskStore) Path() string {
	return s.path
}
