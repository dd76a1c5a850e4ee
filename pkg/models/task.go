package models

import (
	"strings"
	"time"
)

// Area is the top-level classification of work on the board.
type Area string

const (
	AreaProduccion Area = "Producción"
	AreaBranding   Area = "Branding"
)

// Areas lists the areas in their fixed display and export order.
var Areas = []Area{AreaProduccion, AreaBranding}

// Priority is the scarcity-ranked urgency tag of a task. Urgente and Alta
// are capacity-limited per (week, team, area).
type Priority string

const (
	PriorityUrgente Priority = "Urgente"
	PriorityAlta    Priority = "Alta"
	PriorityMedia   Priority = "Media"
	PriorityBaja    Priority = "Baja"
)

// Priorities lists the priorities from most to least urgent.
var Priorities = []Priority{PriorityUrgente, PriorityAlta, PriorityMedia, PriorityBaja}

// Rank returns the severity index of the priority (Urgente=0 .. Baja=3).
// Unknown values rank after Baja.
func (p Priority) Rank() int {
	for i, known := range Priorities {
		if p == known {
			return i
		}
	}
	return len(Priorities)
}

// ParsePriority matches s against the known priorities. Returns false when s
// is not a recognized priority label.
func ParsePriority(s string) (Priority, bool) {
	for _, p := range Priorities {
		if s == string(p) {
			return p, true
		}
	}
	return "", false
}

// Status is the lifecycle state of a task. A task with an empty Basecamp
// link is always StatusBloqueada; a task with a link never is.
type Status string

const (
	StatusBloqueada  Status = "Bloqueada (falta Basecamp)"
	StatusActiva     Status = "Activa"
	StatusEnProgreso Status = "En progreso"
	StatusCompletada Status = "Completada"
)

// Statuses lists all task statuses.
var Statuses = []Status{StatusBloqueada, StatusActiva, StatusEnProgreso, StatusCompletada}

// IsBlocked reports whether the status is a blocked state.
func (s Status) IsBlocked() bool {
	return strings.Contains(string(s), "Bloqueada")
}

// ParseStatus matches s against the known statuses. Returns false when s is
// not a recognized status label.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if s == string(st) {
			return st, true
		}
	}
	return "", false
}

// Team is the execution team responsible for a task.
type Team string

const (
	TeamFull       Team = "Full Performance 🧡"
	TeamCore       Team = "Core Performance 🩷"
	TeamLite       Team = "Lite Performance 🤍"
	TeamSEM        Team = "SEM Performance 💙"
	TeamBlack      Team = "Team Black 🖤"
	TeamUnassigned Team = "Sin asignar"
)

// Teams lists the teams in their fixed enumeration order. TeamUnassigned
// sorts last.
var Teams = []Team{TeamFull, TeamCore, TeamLite, TeamSEM, TeamBlack, TeamUnassigned}

// TeamIndex returns the position of t in the fixed team order. Unknown teams
// sort after TeamUnassigned.
func TeamIndex(t Team) int {
	for i, known := range Teams {
		if t == known {
			return i
		}
	}
	return len(Teams)
}

// LookupTeam resolves free text to a team by case-insensitive substring
// match against the team names. This is a best-effort heuristic, not a
// grammar: the first team whose name contains the query wins, and anything
// unmatched falls back to TeamUnassigned.
func LookupTeam(s string) Team {
	q := strings.ToLower(s)
	for _, t := range Teams {
		if strings.Contains(strings.ToLower(string(t)), q) {
			return t
		}
	}
	return TeamUnassigned
}

// UserRole controls which board operations a user may perform.
type UserRole string

const (
	RoleLeader UserRole = "Leader"
	RoleHead   UserRole = "Head"
)

// Comment is a single comment on a task. The comment list is append-only:
// merges deduplicate on (author, trimmed text) but never remove entries.
type Comment struct {
	ID        string    `yaml:"id"`
	Author    string    `yaml:"author"`
	Timestamp time.Time `yaml:"timestamp"`
	Text      string    `yaml:"text"`
}

// Task is the central board entity: one unit of work assigned to a team for
// a given week and area.
type Task struct {
	ID           string    `yaml:"id"`
	Week         string    `yaml:"week"`
	Area         Area      `yaml:"area"`
	Priority     Priority  `yaml:"priority"`
	Title        string    `yaml:"title"`
	Description  string    `yaml:"description,omitempty"`
	Requester    string    `yaml:"requester"`
	Responsible  Team      `yaml:"responsible"`
	BasecampLink string    `yaml:"basecamp_link"`
	Status       Status    `yaml:"status"`
	Comments     []Comment `yaml:"comments,omitempty"`
	CreatedAt    time.Time `yaml:"created_at"`
	DeliveryDate string    `yaml:"delivery_date,omitempty"`
}
