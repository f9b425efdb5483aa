package commands

import (
	"os"

	"github.com/rinebergc/tesl-card-data-scraper/lib/cardstore"
	"github.com/rinebergc/tesl-card-data-scraper/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var previewLimit *int
var previewColumns *[]string

func init() {
	previewLimit = previewCmd.Flags().IntP("limit", "n", 20, "Maximum number of rows to print, 0 for all.")
	previewColumns = previewCmd.Flags().StringSlice(
		"columns",
		[]string{"name", "type", "attribute", "cost", "rarity", "ability"},
		"Columns to print.",
	)
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [--limit <n>] [--columns a,b,c]",
	Short: "Prints rows of the persisted card csv.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := readConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		cards, err := cardstore.NewStore(cfg.CsvPath, cfg.fields().Columns()).Load()
		if err != nil {
			serviceutil.Fatal("failed to load card csv", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		header := table.Row{}
		for _, col := range *previewColumns {
			header = append(header, col)
		}
		t.AppendHeader(header)

		for i, record := range cards.Records {
			if *previewLimit > 0 && i >= *previewLimit {
				break
			}
			row := table.Row{}
			for _, col := range *previewColumns {
				row = append(row, record[col])
			}
			t.AppendRow(row)
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
