package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/genostudio/genotasks/pkg/models"
)

// exportTimeLayout renders timestamps in the export text (day-first, as the
// board's users read dates). The importer parses comment timestamps with the
// same layout.
const exportTimeLayout = "02/01/2006, 15:04:05"

const areaBanner = "========================================"

// Placeholders emitted for unset fields; the importer maps them back to
// empty strings.
const (
	placeholderNoDelivery = "No definida"
	placeholderNoBasecamp = "Pendiente"
)

// ExportText renders the given week's tasks as plain text, grouped by area,
// then requester, then team. Grouping follows first appearance in the task
// list, not a sort: callers wanting stable groups should pass the output of
// SortTasks. now supplies the generation timestamp in the header.
func ExportText(week string, tasks []models.Task, now func() time.Time) string {
	var filtered []models.Task
	for _, t := range tasks {
		if t.Week == week {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		return fmt.Sprintf("No hay tareas registradas para la semana: %s", week)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SEMANA: %s\n", week)
	fmt.Fprintf(&b, "GENERADO EL: %s\n\n", now().Format(exportTimeLayout))

	for _, area := range models.Areas {
		var areaTasks []models.Task
		for _, t := range filtered {
			if t.Area == area {
				areaTasks = append(areaTasks, t)
			}
		}
		if len(areaTasks) == 0 {
			continue
		}

		fmt.Fprintf(&b, "%s\n", areaBanner)
		fmt.Fprintf(&b, "ÁREA: %s\n", strings.ToUpper(string(area)))
		fmt.Fprintf(&b, "%s\n\n", areaBanner)

		for _, requester := range distinctRequesters(areaTasks) {
			var requesterTasks []models.Task
			for _, t := range areaTasks {
				if t.Requester == requester {
					requesterTasks = append(requesterTasks, t)
				}
			}
			fmt.Fprintf(&b, "%s:\n\n", requester)

			for _, team := range distinctTeams(requesterTasks) {
				fmt.Fprintf(&b, "  Equipo: %s\n", team)
				for _, t := range requesterTasks {
					if t.Responsible != team {
						continue
					}
					writeTaskBlock(&b, t)
				}
			}
		}
	}

	return b.String()
}

func writeTaskBlock(b *strings.Builder, t models.Task) {
	fmt.Fprintf(b, "  - Tarea: %s\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(b, "    Descripción: %s\n", t.Description)
	}
	fmt.Fprintf(b, "    Prioridad: %s\n", t.Priority)
	fmt.Fprintf(b, "    Estado: %s\n", t.Status)
	fmt.Fprintf(b, "    Entrega: %s\n", orPlaceholder(t.DeliveryDate, placeholderNoDelivery))
	fmt.Fprintf(b, "    Basecamp: %s\n", orPlaceholder(t.BasecampLink, placeholderNoBasecamp))

	if len(t.Comments) > 0 {
		fmt.Fprintf(b, "    Comentarios:\n")
		for _, c := range t.Comments {
			fmt.Fprintf(b, "      * [%s] (%s): %s\n", c.Author, c.Timestamp.Format(exportTimeLayout), c.Text)
		}
	} else {
		fmt.Fprintf(b, "    Comentarios: 0\n")
	}
	fmt.Fprintf(b, "\n")
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// distinctRequesters returns the requester values in first-seen order.
func distinctRequesters(tasks []models.Task) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range tasks {
		if !seen[t.Requester] {
			seen[t.Requester] = true
			out = append(out, t.Requester)
		}
	}
	return out
}

// distinctTeams returns the responsible teams in first-seen order.
func distinctTeams(tasks []models.Task) []models.Team {
	seen := make(map[models.Team]bool)
	var out []models.Team
	for _, t := range tasks {
		if !seen[t.Responsible] {
			seen[t.Responsible] = true
			out = append(out, t.Responsible)
		}
	}
	return out
}

// ExportFileName builds the download file name for a week's export, with
// spaces and slashes in the label replaced by underscores.
func ExportFileName(week string) string {
	sanitized := strings.NewReplacer(" ", "_", "/", "_").Replace(week)
	return fmt.Sprintf("Tareas_GenoTasks_%s.txt", sanitized)
}
