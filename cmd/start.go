package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var startForce bool

var startCmd = &cobra.Command{
	Use:   "start <activity>",
	Short: "Start tracking a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runStart,
}

func init() {
	startCmd.Flags().BoolVarP(&startForce, "force", "f", false,
		"Stop the current task first if one is running")
}

func runStart(cmd *cobra.Command, args []string) error {
	app := newApp()
	activity := app.resolveActivity(args[0])

	res, err := app.machine.Start(activity, startForce)
	if err != nil {
		exitOn(err)
	}
	if res.Stopped != nil {
		fmt.Println(describeStop(*res.Stopped))
	}
	fmt.Printf("🟢 Started tracking: '%s'\n", res.Activity)
	return nil
}
