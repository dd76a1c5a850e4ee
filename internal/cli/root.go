// Package cli implements the genotasks command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genostudio/genotasks/internal/core"
	"github.com/genostudio/genotasks/pkg/models"
)

// Services injected by the app wiring before Execute runs.
var (
	Board  core.BoardManager
	Config *models.BoardConfig
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "genotasks",
	Short: "GenoTasks - weekly task board for the production and branding teams",
	Long: `GenoTasks is a weekly task board organized by area and responsible team,
with role-gated editing (Leader vs Head) and a plain-text export/import
workflow used to synchronize state between people without a shared backend.

Urgente and Alta priorities are capacity-limited per (week, team, area);
tasks without a Basecamp link are kept in the blocked state until one is
added.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("genotasks %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// resolveRole maps a --role flag value to a role, falling back to the
// configured default when the flag was not set.
func resolveRole(flag string) (models.UserRole, error) {
	switch flag {
	case "":
		if Config != nil {
			return Config.DefaultRole, nil
		}
		return models.RoleLeader, nil
	case string(models.RoleLeader):
		return models.RoleLeader, nil
	case string(models.RoleHead):
		return models.RoleHead, nil
	}
	return "", fmt.Errorf("invalid role %q (use Leader or Head)", flag)
}
