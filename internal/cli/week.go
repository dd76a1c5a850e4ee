package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/genostudio/genotasks/internal/core"
)

var weekFlags struct {
	date string
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print the Monday-Friday week label for a date",
	Long: `Print the week label used to group tasks, for today or for --date.

Examples:
  genotasks week
  genotasks week --date 2026-01-07`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if weekFlags.date != "" {
			parsed, err := time.ParseInLocation("2006-01-02", weekFlags.date, time.Local)
			if err != nil {
				return fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", weekFlags.date, err)
			}
			date = parsed
		}

		fmt.Println(core.WeekStringFromDate(date))
		return nil
	},
}

func init() {
	weekCmd.Flags().StringVar(&weekFlags.date, "date", "", "date to compute the week for (YYYY-MM-DD)")
	rootCmd.AddCommand(weekCmd)
}
