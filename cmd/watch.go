package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the current task live",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	app := newApp()

	p := tea.NewProgram(watch.New(app.machine))
	if _, err := p.Run(); err != nil {
		fail(err)
	}
	return nil
}
