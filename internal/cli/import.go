package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge an exported file into the board",
	Long: `Parse an export-formatted text file and merge its tasks into the board.

Tasks already on the board (matched by title, week, area, team, and
requester) are updated in place: the merge fills empty descriptions,
Basecamp links, and delivery dates, and appends unseen comments, but never
overwrites populated fields. Unmatched tasks are added as new.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil {
			return fmt.Errorf("board not initialized")
		}

		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		outcome, err := Board.ImportText(string(content))
		if err != nil {
			return fmt.Errorf("importing: %w", err)
		}

		switch {
		case outcome.Parsed == 0:
			fmt.Println("No se detectaron tareas válidas en el archivo.")
		case outcome.Added == 0 && outcome.Updated == 0:
			fmt.Println("El sistema ya está al día con la información del archivo.")
		default:
			fmt.Println("¡Fusión completada!")
			fmt.Printf("- %d tareas nuevas añadidas.\n", outcome.Added)
			fmt.Printf("- %d tareas existentes actualizadas con datos nuevos de entrega, descripción o Basecamp.\n", outcome.Updated)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
