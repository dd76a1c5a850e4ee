package core

import (
	"strings"

	"github.com/genostudio/genotasks/pkg/models"
)

// MergeResult reports how an import batch affected the collection. A task
// counts as updated only when the merge actually changed one of its fields
// or appended a comment, so a zero-value result means the import had no
// effect.
type MergeResult struct {
	Added   int
	Updated int
}

// MergeTasks reconciles a freshly parsed import batch into the existing
// collection and returns the new collection. Matching is by fuzzy identity:
// case-insensitive trimmed title and requester plus exact week, area, and
// team. Unmatched imports are appended as new tasks. Matched imports only
// fill gaps in the existing task:
//
//   - empty description, Basecamp link, or delivery date adopt the imported
//     value; adopting a link promotes a Bloqueada task to Activa
//   - imported comments whose (author, trimmed text) pair is not already
//     present are appended after the existing comments
//
// Populated fields are never overwritten and nothing is removed, so merging
// a batch derived from the current state changes nothing.
func MergeTasks(existing, imported []models.Task) ([]models.Task, MergeResult) {
	merged := make([]models.Task, len(existing))
	copy(merged, existing)

	var result MergeResult
	for _, imp := range imported {
		idx := findByIdentity(merged, imp)
		if idx == -1 {
			merged = append(merged, imp)
			result.Added++
			continue
		}

		task := &merged[idx]
		changed := false

		if strings.TrimSpace(task.Description) == "" && strings.TrimSpace(imp.Description) != "" {
			task.Description = imp.Description
			changed = true
		}

		if strings.TrimSpace(task.BasecampLink) == "" && strings.TrimSpace(imp.BasecampLink) != "" {
			task.BasecampLink = imp.BasecampLink
			if task.Status == models.StatusBloqueada {
				task.Status = models.StatusActiva
			}
			changed = true
		}

		if strings.TrimSpace(task.DeliveryDate) == "" && strings.TrimSpace(imp.DeliveryDate) != "" {
			task.DeliveryDate = imp.DeliveryDate
			changed = true
		}

		if fresh := newComments(task.Comments, imp.Comments); len(fresh) > 0 {
			comments := make([]models.Comment, 0, len(task.Comments)+len(fresh))
			comments = append(comments, task.Comments...)
			comments = append(comments, fresh...)
			task.Comments = comments
			changed = true
		}

		if changed {
			result.Updated++
		}
	}

	return merged, result
}

// findByIdentity returns the index of the task matching imp's composite
// identity, or -1.
func findByIdentity(tasks []models.Task, imp models.Task) int {
	for i, t := range tasks {
		if sameIdentity(t, imp) {
			return i
		}
	}
	return -1
}

func sameIdentity(a, b models.Task) bool {
	return strings.EqualFold(strings.TrimSpace(a.Title), strings.TrimSpace(b.Title)) &&
		a.Week == b.Week &&
		a.Area == b.Area &&
		a.Responsible == b.Responsible &&
		strings.EqualFold(strings.TrimSpace(a.Requester), strings.TrimSpace(b.Requester))
}

// newComments returns the imported comments not already present, comparing
// on the (author, trimmed text) pair.
func newComments(existing, imported []models.Comment) []models.Comment {
	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		seen[commentKey(c)] = true
	}
	var fresh []models.Comment
	for _, c := range imported {
		if !seen[commentKey(c)] {
			fresh = append(fresh, c)
		}
	}
	return fresh
}

func commentKey(c models.Comment) string {
	return c.Author + ":" + strings.TrimSpace(c.Text)
}
