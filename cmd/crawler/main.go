package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"event_recommender/internal/adapters/observability"
	"event_recommender/internal/adapters/ticketmaster"
	"event_recommender/internal/shared"
	mysqlrepo "event_recommender/internal/storage/mysql"
)

// The crawler warms the item store: for each seed metro area it fetches the
// nearby events from the provider and upserts them, so category lookups have
// data before any user has searched.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.TicketBase).
		Int("workers", cfg.Workers).
		Int("locations", len(shared.SeedLocations)).
		Msg("crawler starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	client, err := ticketmaster.New(cfg.TicketBase, cfg.TicketKey, cfg.TicketRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Ticketmaster client")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, loc := range shared.SeedLocations {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(loc shared.SeedLocation) {
			defer wg.Done()
			defer sem.Release(1)

			items, err := client.NearbyEvents(ctx, loc.Lat, loc.Lon)
			if err != nil {
				log.Warn().Str("location", loc.Name).Err(err).Msg("crawl failed")
				return
			}
			if len(items) == 0 {
				log.Info().Str("location", loc.Name).Msg("no events found")
				return
			}
			if err := repo.SaveItems(ctx, items); err != nil {
				log.Warn().Str("location", loc.Name).Err(err).Msg("save failed")
				return
			}
			log.Info().Str("location", loc.Name).Int("events", len(items)).Msg("crawl ok")
		}(loc)
	}

	wg.Wait()
	log.Info().Msg("crawl completed")
}
