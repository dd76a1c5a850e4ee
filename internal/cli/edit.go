package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genostudio/genotasks/internal/core"
	"github.com/genostudio/genotasks/pkg/models"
)

var editFlags struct {
	title     string
	desc      string
	requester string
	team      string
	priority  string
	status    string
	basecamp  string
	delivery  string
	role      string
}

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit a task's fields",
	Long: `Edit a task. Only the flags you pass are changed. Priority and team
changes re-run the capacity check for the task's week and area. Changing
the requester or the status requires the Head role.

The status is auto-corrected on save: setting a Basecamp link unblocks the
task, clearing it blocks the task again.

Examples:
  genotasks edit 3f2a91c0 --priority Urgente
  genotasks edit 3f2a91c0 --basecamp https://3.basecamp.com/123
  genotasks edit 3f2a91c0 --requester Ana --role Head`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}
		role, err := resolveRole(editFlags.role)
		if err != nil {
			return err
		}

		input := core.UpdateTaskInput{Role: role, ID: id}
		if cmd.Flags().Changed("title") {
			input.Title = &editFlags.title
		}
		if cmd.Flags().Changed("desc") {
			input.Description = &editFlags.desc
		}
		if cmd.Flags().Changed("requester") {
			input.Requester = &editFlags.requester
		}
		if cmd.Flags().Changed("team") {
			team := models.LookupTeam(editFlags.team)
			input.Team = &team
		}
		if cmd.Flags().Changed("priority") {
			priority, err := parsePriorityFlag(editFlags.priority)
			if err != nil {
				return err
			}
			input.Priority = &priority
		}
		if cmd.Flags().Changed("status") {
			status, err := parseStatusFlag(editFlags.status)
			if err != nil {
				return err
			}
			input.Status = &status
		}
		if cmd.Flags().Changed("basecamp") {
			input.BasecampLink = &editFlags.basecamp
		}
		if cmd.Flags().Changed("delivery") {
			input.DeliveryDate = &editFlags.delivery
		}

		task, err := Board.UpdateTask(input)
		if err != nil {
			return err
		}

		fmt.Printf("Tarea actualizada: %s\n", task.ID)
		fmt.Printf("  Estado: %s\n", task.Status)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editFlags.title, "title", "", "new title")
	editCmd.Flags().StringVar(&editFlags.desc, "desc", "", "new description")
	editCmd.Flags().StringVar(&editFlags.requester, "requester", "", "new requester (Head only)")
	editCmd.Flags().StringVar(&editFlags.team, "team", "", "new responsible team (fuzzy-matched)")
	editCmd.Flags().StringVar(&editFlags.priority, "priority", "", "new priority")
	editCmd.Flags().StringVar(&editFlags.status, "status", "", "new status (Head only)")
	editCmd.Flags().StringVar(&editFlags.basecamp, "basecamp", "", "new Basecamp link")
	editCmd.Flags().StringVar(&editFlags.delivery, "delivery", "", "new delivery date")
	editCmd.Flags().StringVar(&editFlags.role, "role", "", "acting role: Leader or Head")
	rootCmd.AddCommand(editCmd)
}
