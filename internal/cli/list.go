package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/genostudio/genotasks/internal/core"
	"github.com/genostudio/genotasks/pkg/models"
)

var listFlags struct {
	week        string
	area        string
	team        string
	status      string
	search      string
	interactive bool
}

// Style definitions for the board listing.
var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityUrgente: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		models.PriorityAlta:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		models.PriorityMedia:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		models.PriorityBaja:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}

	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusBloqueada:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		models.StatusActiva:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		models.StatusEnProgreso: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		models.StatusCompletada: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in board order",
	Long: `List tasks in the board's display order: by area, then team, then
priority, with blocked tasks first within their priority tier.

Examples:
  genotasks list --week "05/01/26 - 09/01/26"
  genotasks list --team sem --status bloqueada
  genotasks list --search banner --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil {
			return fmt.Errorf("board not initialized")
		}

		filter := core.ListFilter{Week: listFlags.week, Search: listFlags.search}
		if listFlags.area != "" {
			area, err := parseAreaFlag(listFlags.area)
			if err != nil {
				return err
			}
			filter.Area = area
		}
		if listFlags.team != "" {
			filter.Team = models.LookupTeam(listFlags.team)
		}
		if listFlags.status != "" {
			status, err := parseStatusFlag(listFlags.status)
			if err != nil {
				return err
			}
			filter.Status = status
		}

		tasks, err := Board.ListTasks(filter)
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}

		if listFlags.interactive {
			model := newBoardViewModel(tasks)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		}

		if len(tasks) == 0 {
			fmt.Println("No hay tareas que coincidan con los filtros.")
			return nil
		}

		printTaskTable(tasks)
		return nil
	},
}

func printTaskTable(tasks []models.Task) {
	fmt.Println(listHeaderStyle.Render(fmt.Sprintf("%-9s %-22s %-11s %-24s %-8s %-12s %s",
		"ID", "SEMANA", "ÁREA", "EQUIPO", "PRIOR.", "ENTREGA", "TAREA")))
	for _, t := range tasks {
		priority := priorityStyles[t.Priority].Render(fmt.Sprintf("%-8s", t.Priority))
		title := t.Title
		if t.Status.IsBlocked() {
			title = statusStyles[models.StatusBloqueada].Render(title + " ⚠")
		}
		fmt.Printf("%-9s %-22s %-11s %-24s %s %-12s %s\n",
			shortID(t.ID), t.Week, t.Area, t.Responsible, priority,
			orDash(t.DeliveryDate), title)
	}
	fmt.Printf("\n%d tareas\n", len(tasks))
}

// shortID truncates a UUID to its first segment for display. Commands
// accept both forms.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	listCmd.Flags().StringVar(&listFlags.week, "week", "", "filter by week label")
	listCmd.Flags().StringVar(&listFlags.area, "area", "", "filter by area")
	listCmd.Flags().StringVar(&listFlags.team, "team", "", "filter by responsible team (fuzzy-matched)")
	listCmd.Flags().StringVar(&listFlags.status, "status", "", "filter by status")
	listCmd.Flags().StringVar(&listFlags.search, "search", "", "substring match over title and requester")
	listCmd.Flags().BoolVarP(&listFlags.interactive, "interactive", "i", false, "browse the board interactively")
	rootCmd.AddCommand(listCmd)
}
