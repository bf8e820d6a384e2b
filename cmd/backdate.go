package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/timeparse"
)

var backdateCmd = &cobra.Command{
	Use:   "backdate <activity> <duration>",
	Short: "Log an entry that ended just now (e.g. 'track backdate standup 30m')",
	Args:  cobra.ExactArgs(2),
	RunE:  runBackdate,
}

func runBackdate(cmd *cobra.Command, args []string) error {
	app := newApp()
	activity := app.resolveActivity(args[0])

	d, err := timeparse.ParseDuration(args[1])
	if err != nil {
		exitOn(err)
	}

	entry, day, err := app.log.Backdate(activity, d)
	if err != nil {
		fail(err)
	}
	fmt.Printf("✅ Logged '%s' for %s, ending now (filed under %s).\n",
		entry.Activity, timeparse.FormatMinutes(entry.Duration()), day)
	return nil
}
