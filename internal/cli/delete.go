package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteFlags struct {
	role string
}

var deleteCmd = &cobra.Command{
	Use:   "delete <task-id>",
	Short: "Delete a task (Head role only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}
		role, err := resolveRole(deleteFlags.role)
		if err != nil {
			return err
		}

		if err := Board.DeleteTask(role, id); err != nil {
			return err
		}

		fmt.Printf("Tarea %s eliminada.\n", shortID(id))
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteFlags.role, "role", "", "acting role: Leader or Head")
	rootCmd.AddCommand(deleteCmd)
}
