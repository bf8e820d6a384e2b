package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/tracker"
)

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Start a new task named after the previous one",
	Long: `prev restarts the most recently logged activity under a numbered name:
'review' becomes 'review - 2', 'review - 2' becomes 'review - 3'.`,
	Args: cobra.NoArgs,
	RunE: runPrev,
}

func runPrev(cmd *cobra.Command, args []string) error {
	app := newApp()

	last, err := app.log.LastActivity()
	if err != nil {
		fail(err)
	}
	if last == "" {
		reject("🔴 Error: No previous task found in the log. Use 'track start' to begin.")
	}

	next := tracker.NextActivityName(last)
	res, err := app.machine.Start(next, false)
	if err != nil {
		exitOn(err)
	}
	fmt.Printf("🟢 Started tracking: '%s'\n", res.Activity)
	return nil
}
