// Package core contains the board engine for GenoTasks: task ordering,
// priority capacity checks, plain-text export, the best-effort import
// parser, the merge that reconciles imports into the existing collection,
// and the board service that ties them to a task store.
package core

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/genostudio/genotasks/pkg/models"
)

// ConfigurationManager loads board settings from the .genotasksrc file.
type ConfigurationManager interface {
	LoadBoardConfig() (*models.BoardConfig, error)
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .genotasksrc resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads the
// configuration file from basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultBoardConfig returns a BoardConfig populated with sensible defaults.
func defaultBoardConfig() *models.BoardConfig {
	return &models.BoardConfig{
		DataFile:         "tareas.yaml",
		ExportDir:        "",
		DefaultRole:      models.RoleLeader,
		DefaultRequester: "",
	}
}

// LoadBoardConfig reads .genotasksrc from the base path. If the file does
// not exist, defaults are returned.
func (cm *viperConfigManager) LoadBoardConfig() (*models.BoardConfig, error) {
	cfg := defaultBoardConfig()

	v := viper.New()
	v.SetConfigName(".genotasksrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("data_file", cfg.DataFile)
	v.SetDefault("export_dir", cfg.ExportDir)
	v.SetDefault("defaults.role", string(cfg.DefaultRole))
	v.SetDefault("defaults.requester", cfg.DefaultRequester)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .genotasksrc: %w", err)
	}

	cfg.DataFile = v.GetString("data_file")
	cfg.ExportDir = v.GetString("export_dir")
	cfg.DefaultRequester = v.GetString("defaults.requester")

	role := models.UserRole(v.GetString("defaults.role"))
	if role == models.RoleLeader || role == models.RoleHead {
		cfg.DefaultRole = role
	}
	if cfg.DataFile == "" {
		cfg.DataFile = defaultBoardConfig().DataFile
	}

	return cfg, nil
}
