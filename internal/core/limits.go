package core

import (
	"fmt"

	"github.com/genostudio/genotasks/pkg/models"
)

// Per-(week, team, area) capacity of the scarce priorities.
const (
	urgentCapacity = 1
	highCapacity   = 2
)

// LimitCheck is the outcome of a capacity check. Message is only set when
// the change is disallowed.
type LimitCheck struct {
	Allowed bool
	Message string
}

// CheckPriorityLimit reports whether a task may be created or moved to the
// given priority within the (week, team, area) scope. Media and Baja are
// never limited, and unassigned tasks carry no team commitment. excludeID
// removes the task being edited from its own count; pass "" on creation.
//
// Pure function of its inputs: callers must re-run it whenever week, team,
// area, or priority change, since capacity is scoped to that exact tuple.
func CheckPriorityLimit(tasks []models.Task, week string, team models.Team, area models.Area, priority models.Priority, excludeID string) LimitCheck {
	if priority == models.PriorityMedia || priority == models.PriorityBaja || team == models.TeamUnassigned {
		return LimitCheck{Allowed: true}
	}

	count := 0
	for _, t := range tasks {
		if t.Week == week && t.Responsible == team && t.Area == area && t.Priority == priority && t.ID != excludeID {
			count++
		}
	}

	if priority == models.PriorityUrgente && count >= urgentCapacity {
		return LimitCheck{
			Message: fmt.Sprintf("El equipo %s ya tiene una tarea URGENTE en el área de %s para esta semana.", team, area),
		}
	}

	if priority == models.PriorityAlta && count >= highCapacity {
		return LimitCheck{
			Message: fmt.Sprintf("El equipo %s ya tiene el máximo de 2 tareas ALTAS en el área de %s para esta semana.", team, area),
		}
	}

	return LimitCheck{Allowed: true}
}
