package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/genostudio/genotasks/internal/core"
)

var exportFlags struct {
	week   string
	out    string
	stdout bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a week's tasks as plain text",
	Long: `Render a week's tasks in the plain-text exchange format, grouped by
area, requester, and team. The output file can be shared and merged back
into another board with 'genotasks import'.

Examples:
  genotasks export
  genotasks export --week "05/01/26 - 09/01/26" --stdout
  genotasks export --out /tmp/tareas.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil {
			return fmt.Errorf("board not initialized")
		}

		week := exportFlags.week
		if week == "" {
			week = core.WeekStringFromDate(time.Now())
		}

		text, err := Board.ExportWeek(week)
		if err != nil {
			return err
		}

		if exportFlags.stdout {
			fmt.Print(text)
			return nil
		}

		path := exportFlags.out
		if path == "" {
			dir := ""
			if Config != nil {
				dir = Config.ExportDir
			}
			path = filepath.Join(dir, core.ExportFileName(week))
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}

		fmt.Printf("Exportado: %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.week, "week", "", "week label to export (defaults to the current week)")
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "", "output file path")
	exportCmd.Flags().BoolVar(&exportFlags.stdout, "stdout", false, "print to stdout instead of writing a file")
	rootCmd.AddCommand(exportCmd)
}
