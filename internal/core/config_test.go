package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/genostudio/genotasks/pkg/models"
)

func TestLoadBoardConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := NewConfigurationManager(t.TempDir()).LoadBoardConfig()
	if err != nil {
		t.Fatalf("LoadBoardConfig: %v", err)
	}
	if cfg.DataFile != "tareas.yaml" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.DefaultRole != models.RoleLeader {
		t.Errorf("DefaultRole = %q", cfg.DefaultRole)
	}
}

func TestLoadBoardConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `data_file: board.yaml
export_dir: exports
defaults:
  role: Head
  requester: Ana
`
	if err := os.WriteFile(filepath.Join(dir, ".genotasksrc"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfigurationManager(dir).LoadBoardConfig()
	if err != nil {
		t.Fatalf("LoadBoardConfig: %v", err)
	}
	if cfg.DataFile != "board.yaml" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.ExportDir != "exports" {
		t.Errorf("ExportDir = %q", cfg.ExportDir)
	}
	if cfg.DefaultRole != models.RoleHead {
		t.Errorf("DefaultRole = %q", cfg.DefaultRole)
	}
	if cfg.DefaultRequester != "Ana" {
		t.Errorf("DefaultRequester = %q", cfg.DefaultRequester)
	}
}

func TestLoadBoardConfig_UnknownRoleFallsBack(t *testing.T) {
	dir := t.TempDir()
	content := "defaults:\n  role: Admin\n"
	if err := os.WriteFile(filepath.Join(dir, ".genotasksrc"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewConfigurationManager(dir).LoadBoardConfig()
	if err != nil {
		t.Fatalf("LoadBoardConfig: %v", err)
	}
	if cfg.DefaultRole != models.RoleLeader {
		t.Errorf("DefaultRole = %q, want the Leader default", cfg.DefaultRole)
	}
}
