package commands

import (
	"log/slog"
	"time"

	"github.com/rinebergc/tesl-card-data-scraper/lib/cardstore"
	"github.com/rinebergc/tesl-card-data-scraper/lib/mediawiki"
	"github.com/rinebergc/tesl-card-data-scraper/lib/serviceutil"
	"github.com/rinebergc/tesl-card-data-scraper/services/legends"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Reconciles the card csv against the wiki category, refetching if needed.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := readConfig()
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		client, err := mediawiki.NewClient(mediawiki.ClientOptions{
			Host:        cfg.Wiki.Host,
			ToolName:    cfg.Wiki.ToolName,
			ToolVersion: cfg.Wiki.ToolVersion,
			Contact:     cfg.Wiki.Contact,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize wiki client", err)
		}

		fields := cfg.fields()
		reconciler := legends.Reconciler{
			Source:    client,
			Store:     cardstore.NewStore(cfg.CsvPath, fields.Columns()),
			Extractor: legends.Extractor{Fields: fields},
			Category:  cfg.Wiki.Category,
		}
		if cfg.PageDumpDir != "" {
			dumper, err := legends.NewPageDumper(cfg.PageDumpDir)
			if err != nil {
				serviceutil.Fatal("failed to create page dump directory", err)
			}
			reconciler.Dump = dumper
		}

		t1 := time.Now()
		result, err := reconciler.Reconcile(cmd.Context())
		if err != nil {
			serviceutil.Fatal("reconciliation failed", err)
		}
		t2 := time.Now()

		slog.Info(
			"fetch finished",
			"unchanged", result.Unchanged,
			"cards", len(result.Table.Records),
			"seconds", t2.Sub(t1).Seconds(),
		)
	},
}
