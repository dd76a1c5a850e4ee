package core

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/genostudio/genotasks/pkg/models"
)

// After any sequence of creates gated by CheckPriorityLimit, no
// (week, team, area) scope holds more than 1 Urgente or 2 Alta tasks.
func TestProperty_CapacityInvariantUnderAllowedCreates(t *testing.T) {
	teamGen := rapid.SampledFrom(models.Teams)
	areaGen := rapid.SampledFrom(models.Areas)
	priorityGen := rapid.SampledFrom(models.Priorities)
	weekGen := rapid.SampledFrom([]string{"semana A", "semana B"})

	rapid.Check(t, func(rt *rapid.T) {
		var tasks []models.Task
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")

		for i := 0; i < steps; i++ {
			week := weekGen.Draw(rt, "week")
			team := teamGen.Draw(rt, "team")
			area := areaGen.Draw(rt, "area")
			priority := priorityGen.Draw(rt, "priority")

			check := CheckPriorityLimit(tasks, week, team, area, priority, "")
			if !check.Allowed {
				if check.Message == "" {
					rt.Fatal("disallowed check must carry a message")
				}
				continue
			}
			tasks = append(tasks, models.Task{
				ID:          fmt.Sprintf("t%d", i),
				Week:        week,
				Area:        area,
				Priority:    priority,
				Title:       "x",
				Responsible: team,
			})
		}

		counts := make(map[string]int)
		for _, task := range tasks {
			if task.Responsible == models.TeamUnassigned {
				continue
			}
			key := task.Week + "|" + string(task.Responsible) + "|" + string(task.Area) + "|" + string(task.Priority)
			counts[key]++
			switch task.Priority {
			case models.PriorityUrgente:
				if counts[key] > 1 {
					rt.Fatalf("scope %s exceeded Urgente capacity", key)
				}
			case models.PriorityAlta:
				if counts[key] > 2 {
					rt.Fatalf("scope %s exceeded Alta capacity", key)
				}
			}
		}
	})
}
