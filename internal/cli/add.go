package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/genostudio/genotasks/internal/core"
	"github.com/genostudio/genotasks/pkg/models"
)

var addFlags struct {
	week      string
	area      string
	priority  string
	team      string
	desc      string
	requester string
	basecamp  string
	delivery  string
	role      string
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task on the board",
	Long: `Create a task for a week, area, and responsible team.

A task without a Basecamp link starts as "Bloqueada (falta Basecamp)".
Tasks created with the Leader role get the requester "Pendiente por Head".
Urgente and Alta priorities are rejected when the team's capacity for the
week and area is already used up.

Examples:
  genotasks add "Banner de campaña" --team core --priority Alta
  genotasks add "Spot de radio" --area branding --basecamp https://3.basecamp.com/123 --role Head --requester Ana`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil {
			return fmt.Errorf("board not initialized")
		}

		role, err := resolveRole(addFlags.role)
		if err != nil {
			return err
		}
		area, err := parseAreaFlag(addFlags.area)
		if err != nil {
			return err
		}
		priority, err := parsePriorityFlag(addFlags.priority)
		if err != nil {
			return err
		}

		team := models.TeamUnassigned
		if addFlags.team != "" {
			team = models.LookupTeam(addFlags.team)
		}
		week := addFlags.week
		if week == "" {
			week = core.WeekStringFromDate(time.Now())
		}
		requester := addFlags.requester
		if requester == "" && Config != nil {
			requester = Config.DefaultRequester
		}

		task, err := Board.CreateTask(core.CreateTaskInput{
			Role:         role,
			Week:         week,
			Area:         area,
			Priority:     priority,
			Title:        strings.Join(args, " "),
			Description:  addFlags.desc,
			Requester:    requester,
			Team:         team,
			BasecampLink: addFlags.basecamp,
			DeliveryDate: addFlags.delivery,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Tarea creada: %s\n", task.ID)
		fmt.Printf("  %s | %s | %s | %s\n", task.Week, task.Area, task.Responsible, task.Priority)
		fmt.Printf("  Estado: %s\n", task.Status)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addFlags.week, "week", "", "week label (defaults to the current Monday-Friday week)")
	addCmd.Flags().StringVar(&addFlags.area, "area", string(models.AreaProduccion), "area: Producción or Branding")
	addCmd.Flags().StringVar(&addFlags.priority, "priority", string(models.PriorityMedia), "priority: Urgente, Alta, Media, or Baja")
	addCmd.Flags().StringVar(&addFlags.team, "team", "", "responsible team (fuzzy-matched, e.g. \"core\")")
	addCmd.Flags().StringVar(&addFlags.desc, "desc", "", "description")
	addCmd.Flags().StringVar(&addFlags.requester, "requester", "", "who asked for the work (Head role)")
	addCmd.Flags().StringVar(&addFlags.basecamp, "basecamp", "", "Basecamp link")
	addCmd.Flags().StringVar(&addFlags.delivery, "delivery", "", "delivery date, e.g. 2026-09-04")
	addCmd.Flags().StringVar(&addFlags.role, "role", "", "acting role: Leader or Head")
	rootCmd.AddCommand(addCmd)
}
