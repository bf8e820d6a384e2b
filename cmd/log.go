package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/model"
	"github.com/bneiser/timetrack/internal/timeparse"
)

var (
	logHeaderStyle = lipgloss.NewStyle().Bold(true)
	logBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var logCmd = &cobra.Command{
	Use:   "log [when]",
	Short: "Show the tasks logged for a day (today, yesterday or DD-MM-YYYY)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	app := newApp()

	when := "today"
	if len(args) == 1 {
		when = args[0]
	}
	day, err := timeparse.ParseDaySelector(when, app.clock.Now())
	if err != nil {
		exitOn(err)
	}

	key := model.DayKey(day)
	entries, total, err := app.log.Entries(key)
	if err != nil {
		fail(err)
	}
	if len(entries) == 0 {
		fmt.Printf("No log entries for %s.\n", key)
		return nil
	}

	fmt.Println(renderDay(key, entries, total))
	return nil
}

// renderDay formats one day's entries as a table followed by the total.
// Entries print in log-file order, not sorted by start time.
func renderDay(key string, entries []model.TimeEntry, total time.Duration) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(logBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return logHeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("#", "Start", "End", "Activity", "Duration", "Notes")

	for i, e := range entries {
		tbl.Row(
			strconv.Itoa(i),
			timeparse.FormatClock(e.Start),
			timeparse.FormatClock(e.End),
			e.Activity,
			timeparse.FormatMinutes(e.Duration()),
			strings.Join(e.Notes, "\n"),
		)
	}

	return fmt.Sprintf("Time Log for %s\n%s\nTotal time for %s: %s",
		key, tbl, key, timeparse.FormatTotal(total))
}
