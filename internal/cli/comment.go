package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var commentFlags struct {
	author string
	role   string
}

var commentCmd = &cobra.Command{
	Use:   "comment <task-id> <text>",
	Short: "Add a comment to a task",
	Long: `Append a comment to a task. The author defaults to the acting role;
pass --author to sign with a display name instead.

Examples:
  genotasks comment 3f2a91c0 "Falta el copy final"
  genotasks comment 3f2a91c0 "Aprobado" --author Ana --role Head`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveTaskID(args[0])
		if err != nil {
			return err
		}

		author := commentFlags.author
		if author == "" {
			role, err := resolveRole(commentFlags.role)
			if err != nil {
				return err
			}
			author = string(role)
		}

		task, err := Board.AddComment(id, author, strings.Join(args[1:], " "))
		if err != nil {
			return err
		}

		fmt.Printf("Comentario añadido a %q (%d en total).\n", task.Title, len(task.Comments))
		return nil
	},
}

func init() {
	commentCmd.Flags().StringVar(&commentFlags.author, "author", "", "display name to sign the comment with")
	commentCmd.Flags().StringVar(&commentFlags.role, "role", "", "acting role: Leader or Head")
	rootCmd.AddCommand(commentCmd)
}
