package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/model"
)

var memoCmd = &cobra.Command{
	Use:   "memo",
	Short: "Manage global memos",
}

var memoAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a memo",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemoAdd,
}

var memoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all memos",
	Args:  cobra.NoArgs,
	RunE:  runMemoList,
}

var memoRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a memo by its ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemoRemove,
}

func init() {
	memoCmd.AddCommand(memoAddCmd)
	memoCmd.AddCommand(memoListCmd)
	memoCmd.AddCommand(memoRemoveCmd)
}

func runMemoAdd(cmd *cobra.Command, args []string) error {
	app := newApp()

	memos, err := app.memos.Load()
	if err != nil {
		fail(err)
	}
	memos.Memos = append(memos.Memos, model.Memo{
		Text:      args[0],
		CreatedAt: app.clock.Now(),
	})
	if err := app.memos.Save(memos); err != nil {
		fail(err)
	}
	fmt.Println("📝 Memo saved.")
	return nil
}

func runMemoList(cmd *cobra.Command, args []string) error {
	app := newApp()

	memos, err := app.memos.Load()
	if err != nil {
		fail(err)
	}
	if len(memos.Memos) == 0 {
		fmt.Println("No memos.")
		return nil
	}
	for i, memo := range memos.Memos {
		fmt.Printf("%d  %s  %s\n", i, memo.CreatedAt.Format("2006-01-02 15:04"), memo.Text)
	}
	return nil
}

func runMemoRemove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		reject("❗ Error: The memo ID must be a number.")
	}

	app := newApp()
	memos, err := app.memos.Load()
	if err != nil {
		fail(err)
	}
	if index < 0 || index >= len(memos.Memos) {
		reject("❗ Error: No memo with that ID.")
	}
	memos.Memos = append(memos.Memos[:index], memos.Memos[index+1:]...)
	if err := app.memos.Save(memos); err != nil {
		fail(err)
	}
	fmt.Printf("🗑️ Removed memo %d.\n", index)
	return nil
}
