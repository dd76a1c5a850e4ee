package core

import (
	"sort"

	"github.com/genostudio/genotasks/pkg/models"
)

// SortTasks returns a new slice with the tasks in board display order. The
// input is never mutated. Tie-breaking tiers, in strict precedence:
//
//  1. area, lexicographic
//  2. team, by the fixed enumeration order (unassigned last)
//  3. priority, by severity (Urgente first)
//  4. blocked status before non-blocked
//  5. delivery date ascending, only when both tasks have one
//  6. creation time, newest first
//
// Creation times are effectively unique, so the result is a total order and
// sorting is idempotent.
func SortTasks(tasks []models.Task) []models.Task {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return taskLess(sorted[i], sorted[j])
	})
	return sorted
}

func taskLess(a, b models.Task) bool {
	if a.Area != b.Area {
		return a.Area < b.Area
	}

	if ai, bi := models.TeamIndex(a.Responsible), models.TeamIndex(b.Responsible); ai != bi {
		return ai < bi
	}

	if ar, br := a.Priority.Rank(), b.Priority.Rank(); ar != br {
		return ar < br
	}

	if ab, bb := a.Status.IsBlocked(), b.Status.IsBlocked(); ab != bb {
		return ab
	}

	if a.DeliveryDate != "" && b.DeliveryDate != "" && a.DeliveryDate != b.DeliveryDate {
		return a.DeliveryDate < b.DeliveryDate
	}

	return a.CreatedAt.After(b.CreatedAt)
}
