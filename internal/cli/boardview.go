package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/genostudio/genotasks/pkg/models"
)

// boardViewModel is the interactive task browser behind `list -i`: a
// cursor-driven list with a detail pane for the selected task.
type boardViewModel struct {
	tasks      []models.Task
	cursor     int
	showDetail bool
	width      int
	height     int
}

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	detailPaneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	boardHelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newBoardViewModel(tasks []models.Task) boardViewModel {
	return boardViewModel{tasks: tasks}
}

func (m boardViewModel) Init() tea.Cmd {
	return nil
}

func (m boardViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if m.showDetail {
				m.showDetail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.tasks) > 0 {
				m.showDetail = !m.showDetail
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m boardViewModel) View() string {
	title := boardTitleStyle.Render(" Tablero GenoTasks ")
	help := boardHelpStyle.Render("↑/↓: move | enter: detail | q: quit")

	if len(m.tasks) == 0 {
		return fmt.Sprintf("%s\n\n  No hay tareas que coincidan con los filtros.\n\n%s\n", title, help)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	for i, t := range m.tasks {
		row := fmt.Sprintf("  %-8s %-22s %-24s %-8s %s",
			shortID(t.ID), t.Week, t.Responsible, t.Priority, t.Title)
		if i == m.cursor {
			row = cursorRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if m.showDetail {
		b.WriteString("\n")
		b.WriteString(detailPaneStyle.Render(taskDetail(m.tasks[m.cursor])))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(help)
	b.WriteString("\n")
	return b.String()
}

// taskDetail renders the full field list of a task for the detail pane and
// the show command.
func taskDetail(t models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tarea: %s\n", t.Title)
	fmt.Fprintf(&b, "ID: %s\n", t.ID)
	fmt.Fprintf(&b, "Semana: %s\n", t.Week)
	fmt.Fprintf(&b, "Área: %s\n", t.Area)
	fmt.Fprintf(&b, "Equipo: %s\n", t.Responsible)
	fmt.Fprintf(&b, "Solicitante: %s\n", t.Requester)
	fmt.Fprintf(&b, "Prioridad: %s\n", priorityStyles[t.Priority].Render(string(t.Priority)))
	fmt.Fprintf(&b, "Estado: %s\n", statusStyles[t.Status].Render(string(t.Status)))
	if t.Description != "" {
		fmt.Fprintf(&b, "Descripción: %s\n", t.Description)
	}
	fmt.Fprintf(&b, "Entrega: %s\n", orDash(t.DeliveryDate))
	fmt.Fprintf(&b, "Basecamp: %s\n", orDash(t.BasecampLink))
	fmt.Fprintf(&b, "Comentarios: %d\n", len(t.Comments))
	for _, c := range t.Comments {
		fmt.Fprintf(&b, "  * [%s] (%s): %s\n", c.Author, c.Timestamp.Format("02/01/2006 15:04"), c.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}
