package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage task aliases",
}

var aliasAddCmd = &cobra.Command{
	Use:   "add <alias> <activity>",
	Short: "Add or update an alias for an activity",
	Args:  cobra.ExactArgs(2),
	RunE:  runAliasAdd,
}

var aliasRemoveCmd = &cobra.Command{
	Use:   "remove <alias>",
	Short: "Remove an alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runAliasRemove,
}

var aliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configured aliases",
	Args:  cobra.NoArgs,
	RunE:  runAliasList,
}

func init() {
	aliasCmd.AddCommand(aliasAddCmd)
	aliasCmd.AddCommand(aliasRemoveCmd)
	aliasCmd.AddCommand(aliasListCmd)
}

func runAliasAdd(cmd *cobra.Command, args []string) error {
	app := newApp()
	name := strings.ToLower(args[0])

	cfg, err := app.config.Load()
	if err != nil {
		fail(err)
	}
	cfg.Aliases[name] = args[1]
	if err := app.config.Save(cfg); err != nil {
		fail(err)
	}
	fmt.Printf("✅ Alias '%s' now points to '%s'.\n", name, args[1])
	return nil
}

func runAliasRemove(cmd *cobra.Command, args []string) error {
	app := newApp()
	name := strings.ToLower(args[0])

	cfg, err := app.config.Load()
	if err != nil {
		fail(err)
	}
	if _, ok := cfg.Aliases[name]; !ok {
		reject(fmt.Sprintf("❗ Error: No alias named '%s'.", name))
	}
	delete(cfg.Aliases, name)
	if err := app.config.Save(cfg); err != nil {
		fail(err)
	}
	fmt.Printf("🗑️ Removed alias '%s'.\n", name)
	return nil
}

func runAliasList(cmd *cobra.Command, args []string) error {
	app := newApp()

	cfg, err := app.config.Load()
	if err != nil {
		fail(err)
	}
	if len(cfg.Aliases) == 0 {
		fmt.Println("No aliases configured.")
		return nil
	}

	names := make([]string, 0, len(cfg.Aliases))
	for name := range cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s → %s\n", name, cfg.Aliases[name])
	}
	return nil
}
