package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/timeparse"
	"github.com/bneiser/timetrack/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current task status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

var notesCmd = &cobra.Command{
	Use:   "notes <text>",
	Short: "Add a note to the active task",
	Args:  cobra.ExactArgs(1),
	RunE:  runNotes,
}

func runStatus(cmd *cobra.Command, args []string) error {
	app := newApp()

	info, err := app.machine.Status()
	if err != nil {
		fail(err)
	}
	fmt.Println(describeStatus(info))
	return nil
}

func describeStatus(info tracker.StatusInfo) string {
	switch info.State {
	case tracker.Running:
		return fmt.Sprintf("🟢 Active Task: '%s' (started at %s, %s so far)",
			info.Activity,
			timeparse.FormatClock(info.StartedAt),
			timeparse.FormatMinutes(info.Elapsed))
	case tracker.Paused:
		return fmt.Sprintf("⏸️ Paused Task: '%s' (%s logged)",
			info.Activity, timeparse.FormatMinutes(info.Elapsed))
	default:
		return "⚪ No task is currently running."
	}
}

func runNotes(cmd *cobra.Command, args []string) error {
	app := newApp()

	info, err := app.machine.AddNote(args[0])
	if err != nil {
		exitOn(err)
	}
	fmt.Printf("📝 Note added to '%s'.\n", info.Activity)
	return nil
}
