package core

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/genostudio/genotasks/pkg/models"
)

// Line markers of the export format recognized by the parser.
const (
	markerWeek        = "SEMANA:"
	markerArea        = "ÁREA:"
	markerTeam        = "Equipo:"
	markerTask        = "- Tarea:"
	markerPriority    = "Prioridad:"
	markerStatus      = "Estado:"
	markerDelivery    = "Entrega:"
	markerBasecamp    = "Basecamp:"
	markerDescription = "Descripción:"
	markerComments    = "Comentarios"
)

// Defaults stamped onto committed tasks whose grouping context never
// appeared in the text.
const (
	fallbackWeek      = "Sin semana"
	fallbackRequester = "Desconocido"
)

var commentPattern = regexp.MustCompile(`^\* \[(.*?)\] \((.*?)\): (.*)`)

// requesterExclusions are the line prefixes that disqualify a colon-
// terminated line from being read as a requester header.
var requesterExclusions = []string{
	"SEMANA", "ÁREA", "Equipo", "Prioridad", "Estado",
	"Entrega", "Basecamp", "Descripción", markerComments, "=",
}

// ParseImportText reconstructs tasks from export-formatted text. Parsing is
// best-effort: unrecognized lines are skipped, malformed values fall back to
// defaults, and the function never fails outright. Committed tasks receive
// fresh IDs and creation timestamps.
func ParseImportText(text string) []models.Task {
	return parseImportText(text, time.Now, uuid.NewString)
}

// importParser is a single-pass line parser. It carries four pieces of
// ambient grouping state (week, area, requester, team) across lines plus an
// in-progress task accumulator that is flushed whenever a grouping boundary
// or a new task marker is seen.
type importParser struct {
	week      string
	area      models.Area
	requester string
	team      models.Team

	current *taskDraft
	tasks   []models.Task

	now   func() time.Time
	newID func() string
}

// taskDraft accumulates the fields of the task currently being parsed.
// Unset fields receive defaults when the draft is committed.
type taskDraft struct {
	title        string
	description  string
	priority     models.Priority
	status       models.Status
	deliveryDate string
	basecampLink string
	comments     []models.Comment
}

func parseImportText(text string, now func() time.Time, newID func() string) []models.Task {
	p := &importParser{
		area:  models.AreaProduccion,
		team:  models.TeamUnassigned,
		now:   now,
		newID: newID,
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, raw := range strings.Split(text, "\n") {
		p.consume(raw)
	}
	p.flush()

	return p.tasks
}

// consume advances the parser by one line.
func (p *importParser) consume(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return
	}

	switch {
	case strings.HasPrefix(line, markerWeek):
		p.flush()
		p.week = strings.TrimSpace(strings.TrimPrefix(line, markerWeek))

	case strings.HasPrefix(line, markerArea):
		p.flush()
		value := strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(line, markerArea)))
		if strings.Contains(value, "BRANDING") {
			p.area = models.AreaBranding
		} else {
			p.area = models.AreaProduccion
		}

	case isRequesterHeader(raw, line):
		p.flush()
		p.requester = strings.TrimSpace(line[:strings.Index(line, ":")])

	case strings.HasPrefix(line, markerTeam):
		p.team = models.LookupTeam(strings.TrimSpace(strings.TrimPrefix(line, markerTeam)))

	case strings.HasPrefix(line, markerTask):
		p.flush()
		p.current = &taskDraft{title: strings.TrimSpace(strings.TrimPrefix(line, markerTask))}

	case p.current != nil:
		p.field(line)
	}
}

// field populates the in-progress draft from a recognized field line.
// Unrecognized lines and unknown priority or status labels are ignored.
func (p *importParser) field(line string) {
	switch {
	case strings.HasPrefix(line, markerPriority):
		if priority, ok := models.ParsePriority(strings.TrimSpace(strings.TrimPrefix(line, markerPriority))); ok {
			p.current.priority = priority
		}

	case strings.HasPrefix(line, markerStatus):
		if status, ok := models.ParseStatus(strings.TrimSpace(strings.TrimPrefix(line, markerStatus))); ok {
			p.current.status = status
		}

	case strings.HasPrefix(line, markerDelivery):
		value := strings.TrimSpace(strings.TrimPrefix(line, markerDelivery))
		if value == placeholderNoDelivery {
			value = ""
		}
		p.current.deliveryDate = value

	case strings.HasPrefix(line, markerBasecamp):
		value := strings.TrimSpace(strings.TrimPrefix(line, markerBasecamp))
		if value == placeholderNoBasecamp {
			value = ""
		}
		p.current.basecampLink = value

	case strings.HasPrefix(line, markerDescription):
		p.current.description = strings.TrimSpace(strings.TrimPrefix(line, markerDescription))

	case strings.HasPrefix(line, "* ["):
		match := commentPattern.FindStringSubmatch(line)
		if match == nil {
			return
		}
		p.current.comments = append(p.current.comments, models.Comment{
			ID:        p.newID(),
			Author:    match[1],
			Timestamp: parseCommentTime(match[2], p.now),
			Text:      match[3],
		})
	}
}

// flush commits the in-progress draft, if any. Drafts without a title are
// discarded; unset fields fall back to defaults.
func (p *importParser) flush() {
	draft := p.current
	p.current = nil
	if draft == nil || draft.title == "" {
		return
	}

	week := p.week
	if week == "" {
		week = fallbackWeek
	}
	requester := p.requester
	if requester == "" {
		requester = fallbackRequester
	}
	priority := draft.priority
	if priority == "" {
		priority = models.PriorityMedia
	}
	status := draft.status
	if status == "" {
		status = models.StatusActiva
	}

	p.tasks = append(p.tasks, models.Task{
		ID:           p.newID(),
		Week:         week,
		Area:         p.area,
		Priority:     priority,
		Title:        draft.title,
		Description:  draft.description,
		Requester:    requester,
		Responsible:  p.team,
		BasecampLink: draft.basecampLink,
		Status:       status,
		Comments:     draft.comments,
		CreatedAt:    p.now(),
		DeliveryDate: draft.deliveryDate,
	})
}

// isRequesterHeader reports whether the line is a requester-name header: an
// un-indented line ending with a colon that does not start with any known
// field marker or banner rule.
func isRequesterHeader(raw, line string) bool {
	if !strings.HasSuffix(raw, ":") || strings.HasPrefix(raw, " ") {
		return false
	}
	for _, prefix := range requesterExclusions {
		if strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return strings.Contains(line, ":")
}

// commentTimeLayouts are tried in order when parsing a comment timestamp
// out of the localized export text.
var commentTimeLayouts = []string{
	exportTimeLayout,
	"2/1/2006, 15:04:05",
	"02/01/2006 15:04",
	time.RFC3339,
}

// parseCommentTime parses a localized timestamp, falling back to the
// current time when no layout matches.
func parseCommentTime(s string, now func() time.Time) time.Time {
	for _, layout := range commentTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now()
}
