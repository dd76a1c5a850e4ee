package models

// BoardConfig holds board-wide settings loaded from the .genotasksrc file.
type BoardConfig struct {
	// DataFile is the name of the YAML file holding the task collection,
	// relative to the board base directory.
	DataFile string `yaml:"data_file"`
	// ExportDir is where generated export files are written.
	ExportDir string `yaml:"export_dir"`
	// DefaultRole is the role assumed when a command does not pass --role.
	DefaultRole UserRole `yaml:"default_role"`
	// DefaultRequester pre-fills the requester on new tasks created by Head.
	DefaultRequester string `yaml:"default_requester"`
}
