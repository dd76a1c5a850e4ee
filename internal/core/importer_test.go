package core

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/genostudio/genotasks/pkg/models"
)

// deterministicParse runs the parser with a fixed clock and sequential IDs.
func deterministicParse(text string) []models.Task {
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return parseImportText(text, fixedNow, newID)
}

func TestParseImportText_FullDocument(t *testing.T) {
	text := ExportText(testWeek, exportFixture(), fixedNow)
	got := deterministicParse(text)

	if len(got) != 3 {
		t.Fatalf("parsed %d tasks, want 3", len(got))
	}

	banner := got[0]
	if banner.Title != "Banner promo" {
		t.Errorf("title = %q", banner.Title)
	}
	if banner.Week != testWeek {
		t.Errorf("week = %q", banner.Week)
	}
	if banner.Area != models.AreaProduccion || banner.Requester != "Ana" || banner.Responsible != models.TeamCore {
		t.Errorf("grouping fields = %q %q %q", banner.Area, banner.Requester, banner.Responsible)
	}
	if banner.Priority != models.PriorityUrgente || banner.Status != models.StatusActiva {
		t.Errorf("priority/status = %q %q", banner.Priority, banner.Status)
	}
	if banner.Description != "Banner para la campaña" || banner.DeliveryDate != "2026-01-08" {
		t.Errorf("description/delivery = %q %q", banner.Description, banner.DeliveryDate)
	}
	if banner.BasecampLink != "https://3.basecamp.com/123" {
		t.Errorf("basecamp = %q", banner.BasecampLink)
	}
	if len(banner.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(banner.Comments))
	}
	if c := banner.Comments[0]; c.Author != "Head" || c.Text != "Revisar copy" {
		t.Errorf("comment = %+v", c)
	}
	if !banner.Comments[0].Timestamp.Equal(time.Date(2026, 1, 6, 18, 45, 12, 0, time.UTC)) {
		t.Errorf("comment timestamp = %v", banner.Comments[0].Timestamp)
	}

	blocked := got[1]
	if blocked.Status != models.StatusBloqueada || blocked.BasecampLink != "" || blocked.DeliveryDate != "" {
		t.Errorf("placeholders should map back to empty: %+v", blocked)
	}

	branding := got[2]
	if branding.Area != models.AreaBranding || branding.Responsible != models.TeamUnassigned || branding.Requester != "Luis" {
		t.Errorf("branding task grouping = %q %q %q", branding.Area, branding.Responsible, branding.Requester)
	}
}

func TestParseImportText_DefaultsWhenContextMissing(t *testing.T) {
	got := deterministicParse("  - Tarea: Suelta\n")
	if len(got) != 1 {
		t.Fatalf("parsed %d tasks, want 1", len(got))
	}

	task := got[0]
	if task.Week != "Sin semana" {
		t.Errorf("week = %q", task.Week)
	}
	if task.Requester != "Desconocido" {
		t.Errorf("requester = %q", task.Requester)
	}
	if task.Area != models.AreaProduccion || task.Responsible != models.TeamUnassigned {
		t.Errorf("area/team = %q %q", task.Area, task.Responsible)
	}
	if task.Priority != models.PriorityMedia || task.Status != models.StatusActiva {
		t.Errorf("priority/status = %q %q", task.Priority, task.Status)
	}
}

func TestParseImportText_UntitledTasksDiscarded(t *testing.T) {
	if got := deterministicParse("  - Tarea:\n    Prioridad: Alta\n"); len(got) != 0 {
		t.Fatalf("untitled task should be discarded, got %d", len(got))
	}
}

func TestParseImportText_AreaFuzzyMapping(t *testing.T) {
	text := "ÁREA: equipo de branding global\n  - Tarea: A\nÁREA: otra cosa\n  - Tarea: B\n"
	got := deterministicParse(text)
	if len(got) != 2 {
		t.Fatalf("parsed %d tasks, want 2", len(got))
	}
	if got[0].Area != models.AreaBranding {
		t.Errorf("text containing BRANDING should map to Branding, got %q", got[0].Area)
	}
	if got[1].Area != models.AreaProduccion {
		t.Errorf("unrecognized area should map to Producción, got %q", got[1].Area)
	}
}

func TestParseImportText_TeamFuzzyMatch(t *testing.T) {
	text := "  Equipo: sem\n  - Tarea: A\n  Equipo: algo inexistente\n  - Tarea: B\n"
	got := deterministicParse(text)
	if len(got) != 2 {
		t.Fatalf("parsed %d tasks, want 2", len(got))
	}
	if got[0].Responsible != models.TeamSEM {
		t.Errorf("team = %q, want SEM", got[0].Responsible)
	}
	if got[1].Responsible != models.TeamUnassigned {
		t.Errorf("unmatched team should fall back to unassigned, got %q", got[1].Responsible)
	}
}

func TestParseImportText_RequesterHeaderHeuristic(t *testing.T) {
	text := strings.Join([]string{
		"Ana María:",
		"  - Tarea: Con solicitante",
		"Entrega:",     // known marker: not a requester even though it ends with a colon
		"  Indentada:", // indented: not a requester
		"  - Tarea: Otra",
	}, "\n")

	got := deterministicParse(text)
	if len(got) != 2 {
		t.Fatalf("parsed %d tasks, want 2", len(got))
	}
	for _, task := range got {
		if task.Requester != "Ana María" {
			t.Errorf("requester = %q, want %q", task.Requester, "Ana María")
		}
	}
}

func TestParseImportText_MalformedCommentLinesSkipped(t *testing.T) {
	text := strings.Join([]string{
		"  - Tarea: Con comentarios",
		"    Comentarios:",
		"      * [Ana] (06/01/2026, 18:45:12): bien formado",
		"      * [sin paréntesis: mal formado",
		"      * otra línea irreconocible",
	}, "\n")

	got := deterministicParse(text)
	if len(got) != 1 {
		t.Fatalf("parsed %d tasks, want 1", len(got))
	}
	if len(got[0].Comments) != 1 {
		t.Fatalf("comments = %d, want 1 (malformed lines skipped)", len(got[0].Comments))
	}
}

func TestParseImportText_UnparseableCommentTimestampDefaultsToNow(t *testing.T) {
	text := "  - Tarea: X\n    Comentarios:\n      * [Ana] (ayer por la tarde): hola\n"
	got := deterministicParse(text)
	if len(got) != 1 || len(got[0].Comments) != 1 {
		t.Fatalf("unexpected parse result: %+v", got)
	}
	if !got[0].Comments[0].Timestamp.Equal(exportNow) {
		t.Errorf("timestamp = %v, want the injected clock value", got[0].Comments[0].Timestamp)
	}
}

func TestParseImportText_WeekBoundaryFlushesTask(t *testing.T) {
	text := strings.Join([]string{
		"SEMANA: semana uno",
		"  - Tarea: Primera",
		"SEMANA: semana dos",
		"  - Tarea: Segunda",
	}, "\n")

	got := deterministicParse(text)
	if len(got) != 2 {
		t.Fatalf("parsed %d tasks, want 2", len(got))
	}
	if got[0].Week != "semana uno" || got[1].Week != "semana dos" {
		t.Errorf("weeks = %q %q", got[0].Week, got[1].Week)
	}
}

func TestParseImportText_EmptyInput(t *testing.T) {
	if got := deterministicParse(""); len(got) != 0 {
		t.Fatalf("empty input should yield no tasks, got %d", len(got))
	}
	if got := deterministicParse("texto sin ningún marcador\notro renglón\n"); len(got) != 0 {
		t.Fatalf("markerless input should yield no tasks, got %d", len(got))
	}
}
