package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/timeparse"
)

var (
	addStart string
	addEnd   string
	addFor   string
)

var addCmd = &cobra.Command{
	Use:   "add <activity>",
	Short: "Add a completed time entry retrospectively",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addStart, "start", "",
		"Start time (e.g. 'today 10am', '25-07-2025 14:00')")
	addCmd.Flags().StringVar(&addEnd, "end", "", "End time (e.g. 'today 11am')")
	addCmd.Flags().StringVar(&addFor, "for", "", "Duration (e.g. '1h', '30m')")
	_ = addCmd.MarkFlagRequired("start")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addEnd == "" && addFor == "" {
		reject("❗ Error: You must provide either --end or --for.")
	}
	if addEnd != "" && addFor != "" {
		reject("❗ Error: You cannot provide both --end and --for.")
	}

	app := newApp()
	activity := app.resolveActivity(args[0])

	entry, day, err := app.log.Add(activity, addStart, addEnd, addFor)
	if err != nil {
		exitOn(err)
	}
	fmt.Printf("✅ Added '%s' on %s (%s – %s, %s).\n",
		entry.Activity, day,
		timeparse.FormatClock(entry.Start),
		timeparse.FormatClock(entry.End),
		timeparse.FormatMinutes(entry.Duration()))
	return nil
}
