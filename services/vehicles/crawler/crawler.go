package crawler

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"sync/atomic"
	"wtdata-backend/lib/scrapers/wtwiki"
	"wtdata-backend/services/vehicles"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/vehicles/crawler")

type Crawler struct {
	client  *wtwiki.Client
	db      *sql.DB
	workers int
}

type Options struct {
	// concurrent vehicle page fetches, defaults to 4. records have no
	// shared mutable state, the store connection is pooled by
	// database/sql, so fan-out needs no further coordination.
	Workers int
}

func NewCrawler(client *wtwiki.Client, db *sql.DB, opts Options) Crawler {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	return Crawler{
		client:  client,
		db:      db,
		workers: workers,
	}
}

// Stats counts one crawl run.
type Stats struct {
	Scraped int64
	Failed  int64
}

// Run ingests every category in order. Failures are per-vehicle: a
// page that cannot be fetched, assembled or persisted is logged and
// skipped, the run always continues.
func (c Crawler) Run(ctx context.Context) Stats {
	var stats Stats
	for _, category := range vehicles.Categories {
		c.runCategory(ctx, category, &stats)
	}
	return stats
}

func (c Crawler) runCategory(ctx context.Context, category vehicles.Category, stats *Stats) {
	ctx, span := tracer.Start(ctx, "runCategory")
	defer span.End()
	span.SetAttributes(attribute.String("category", string(category)))

	slog.InfoContext(ctx, "start processing category", "category", category)

	links, err := c.client.VehicleLinks(ctx, string(category))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.ErrorContext(ctx, "failed to collect vehicle links", "category", category, "err", err)
		return
	}
	slog.InfoContext(ctx, "collected vehicle links", "category", category, "count", len(links))

	sem := make(chan struct{}, c.workers)
	wg := sync.WaitGroup{}
	for _, link := range links {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(link wtwiki.VehicleLink) {
			defer wg.Done()
			defer func() { <-sem }()

			err := c.scrapeVehicle(ctx, category, link)
			if err != nil {
				atomic.AddInt64(&stats.Failed, 1)
				return
			}
			atomic.AddInt64(&stats.Scraped, 1)
		}(link)
	}
	wg.Wait()
}

func (c Crawler) scrapeVehicle(ctx context.Context, category vehicles.Category, link wtwiki.VehicleLink) error {
	ctx, span := tracer.Start(ctx, "scrapeVehicle")
	defer span.End()
	span.SetAttributes(
		attribute.String("nation", link.Nation),
		attribute.String("url", link.Url),
	)

	slog.DebugContext(ctx, "scraping vehicle", "nation", link.Nation, "url", link.Url)

	page, err := c.client.VehiclePage(ctx, link.Url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "failed to fetch vehicle page", "url", link.Url, "err", err)
		return err
	}

	record := vehicles.Assemble(ctx, vehicles.NewDocument(page), category)

	err = vehicles.Persist(ctx, c.db, record)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.WarnContext(ctx, "failed to persist vehicle",
			"vehicle", record.Name(), "category", category, "err", err)
		return err
	}

	slog.DebugContext(ctx, "persisted vehicle", "vehicle", record.Name(), "category", category)
	return nil
}
