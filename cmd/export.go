package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bneiser/timetrack/internal/export"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full time log to a file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "xlsx", "Output format: csv, xlsx")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFormat != "csv" && exportFormat != "xlsx" {
		reject(fmt.Sprintf("❗ Error: Unsupported format %q. Use csv or xlsx.", exportFormat))
	}

	app := newApp()
	days, err := app.logStore.LoadAll()
	if err != nil {
		fail(err)
	}
	if len(days) == 0 {
		reject("No log entries to export.")
	}

	path, err := export.FilePath(filepath.Join(app.base, "exports"), exportFormat, app.clock.Now())
	if err != nil {
		fail(err)
	}

	switch exportFormat {
	case "csv":
		f, err := os.Create(path)
		if err != nil {
			fail(err)
		}
		if err := export.WriteCSV(f, days); err != nil {
			f.Close()
			fail(err)
		}
		if err := f.Close(); err != nil {
			fail(err)
		}
	case "xlsx":
		if err := export.WriteXLSX(path, days); err != nil {
			fail(err)
		}
	}

	fmt.Printf("✅ Successfully exported all data to %s\n", path)
	return nil
}
