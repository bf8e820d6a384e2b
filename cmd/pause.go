package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the current task",
	Args:  cobra.NoArgs,
	RunE:  runPause,
}

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the paused task",
	Args:  cobra.NoArgs,
	RunE:  runResume,
}

func runPause(cmd *cobra.Command, args []string) error {
	app := newApp()

	info, err := app.machine.Pause()
	if err != nil {
		exitOn(err)
	}
	fmt.Printf("⏸️ Paused '%s'.\n", info.Activity)
	return nil
}

func runResume(cmd *cobra.Command, args []string) error {
	app := newApp()

	info, err := app.machine.Resume()
	if err != nil {
		exitOn(err)
	}
	fmt.Printf("🟢 Resumed tracking: '%s'\n", info.Activity)
	return nil
}
