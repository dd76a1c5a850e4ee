package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [task-id]",
	Short: "Show a task's full detail, including comments",
	Long: `Show every field of a task. With no argument, an interactive picker
lists the board's tasks.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := taskIDFromArgs(args)
		if err != nil {
			return err
		}

		task, err := Board.GetTask(id)
		if err != nil {
			return err
		}

		fmt.Println(taskDetail(*task))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
