package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "track",
	Short: "timetrack – a personal CLI time tracker",
	Long: `track records intervals of work against named activities.
All data is stored as human-readable JSON files in ~/.timetrack/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(backdateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(memoCmd)
	rootCmd.AddCommand(watchCmd)
}
