package cli

import (
	"fmt"
	"strings"

	"github.com/genostudio/genotasks/pkg/models"
)

// parseAreaFlag matches a flag value case-insensitively against the known
// areas.
func parseAreaFlag(s string) (models.Area, error) {
	for _, a := range models.Areas {
		if strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("invalid area %q (use Producción or Branding)", s)
}

// parsePriorityFlag matches a flag value case-insensitively against the
// known priorities.
func parsePriorityFlag(s string) (models.Priority, error) {
	for _, p := range models.Priorities {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid priority %q (use Urgente, Alta, Media, or Baja)", s)
}

// parseStatusFlag matches a flag value against the known statuses by
// case-insensitive prefix, so "bloqueada" resolves the full blocked label.
func parseStatusFlag(s string) (models.Status, error) {
	if s == "" {
		return "", fmt.Errorf("empty status")
	}
	for _, st := range models.Statuses {
		if strings.EqualFold(s, string(st)) || strings.HasPrefix(strings.ToLower(string(st)), strings.ToLower(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status %q", s)
}
