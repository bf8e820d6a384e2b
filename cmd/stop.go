package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current task and log the time",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	app := newApp()

	res, err := app.machine.Stop()
	if err != nil {
		exitOn(err)
	}
	fmt.Println(describeStop(res))
	return nil
}
