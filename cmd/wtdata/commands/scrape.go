package commands

import (
	"log/slog"
	"time"
	"wtdata-backend/lib/configutil"
	"wtdata-backend/lib/restyutil"
	"wtdata-backend/lib/scrapers/wtwiki"
	"wtdata-backend/lib/serviceutil"
	"wtdata-backend/services/vehicles/crawler"
	"wtdata-backend/services/vehicles/db"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

var scrapeDumpTraffic *bool

func init() {
	scrapeDumpTraffic = scrapeCmd.Flags().Bool(
		"dump-traffic", false,
		"Dump raw http traffic to .dev/resty/wtwiki for debugging.",
	)
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrapes all vehicle categories from the wiki and writes them to a database.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadConfig[Config]("config.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		var output restyutil.InstrumentOutput
		if *scrapeDumpTraffic {
			output = restyutil.NewFilesystemOutput(".dev/resty/wtwiki")
		}
		client, err := wtwiki.NewClient(wtwiki.ClientOptions{
			BaseUrl: cfg.BaseUrl,
			Output:  output,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize wiki client", err)
		}

		out, err := cfg.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer out.Close()

		c := crawler.NewCrawler(client, out, crawler.Options{
			Workers: cfg.Workers,
		})

		t1 := time.Now()
		stats := c.Run(serviceutil.SignalContext())
		t2 := time.Now()

		slog.Info("scraping done",
			"scraped", stats.Scraped,
			"failed", stats.Failed,
			"seconds", t2.Sub(t1).Seconds(),
		)
	},
}
