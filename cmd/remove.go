package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/model"
	"github.com/bneiser/timetrack/internal/timeparse"
)

var removeWhen string

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a log entry by its ID for a given day",
	Long: `remove deletes one entry from a day's log. IDs are the positions shown
by 'track log'; entries after the removed one shift down by one.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removeWhen, "when", "today",
		"Day to remove from (today, yesterday or DD-MM-YYYY)")
}

func runRemove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		reject("❗ Error: The entry ID must be a number.")
	}

	app := newApp()
	day, err := timeparse.ParseDaySelector(removeWhen, app.clock.Now())
	if err != nil {
		exitOn(err)
	}

	removed, err := app.log.Remove(model.DayKey(day), index)
	if err != nil {
		exitOn(err)
	}
	fmt.Printf("🗑️ Removed entry %d ('%s') from %s.\n",
		index, removed.Activity, model.DayKey(day))
	return nil
}
