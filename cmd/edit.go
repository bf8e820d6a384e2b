package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/model"
	"github.com/bneiser/timetrack/internal/timeparse"
	"github.com/bneiser/timetrack/internal/tracker"
)

var (
	editWhen     string
	editActivity string
	editStart    string
	editEnd      string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a log entry by its ID for a given day",
	Long: `edit rewrites one entry in a day's log. Fields left empty keep their
current value. Without any field flag, the command prompts for each field;
pressing enter accepts the shown value.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editWhen, "when", "today",
		"Day to edit (today, yesterday or DD-MM-YYYY)")
	editCmd.Flags().StringVar(&editActivity, "activity", "", "New activity name")
	editCmd.Flags().StringVar(&editStart, "start", "", "New start time")
	editCmd.Flags().StringVar(&editEnd, "end", "", "New end time")
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		reject("❗ Error: The entry ID must be a number.")
	}

	app := newApp()
	day, err := timeparse.ParseDaySelector(editWhen, app.clock.Now())
	if err != nil {
		exitOn(err)
	}

	upd := tracker.EntryUpdate{
		Activity: editActivity,
		Start:    editStart,
		End:      editEnd,
	}
	if upd == (tracker.EntryUpdate{}) {
		entries, _, err := app.log.Entries(model.DayKey(day))
		if err != nil {
			fail(err)
		}
		if index < 0 || index >= len(entries) {
			exitOn(tracker.ErrEntryNotFound)
		}
		current := entries[index]

		r := bufio.NewReader(os.Stdin)
		upd.Activity = promptDefault(r, "Activity", current.Activity)
		upd.Start = promptDefault(r, "Start", timeparse.FormatClock(current.Start))
		upd.End = promptDefault(r, "End", timeparse.FormatClock(current.End))
	}

	entry, err := app.log.Edit(day, index, upd)
	if err != nil {
		exitOn(err)
	}
	fmt.Printf("✏️ Updated entry %d: '%s' (%s – %s).\n",
		index, entry.Activity,
		timeparse.FormatClock(entry.Start),
		timeparse.FormatClock(entry.End))
	return nil
}
