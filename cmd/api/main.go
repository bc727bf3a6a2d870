package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "event_recommender/internal/adapters/http_server"
	"event_recommender/internal/adapters/observability"
	redisad "event_recommender/internal/adapters/redis"
	"event_recommender/internal/adapters/ticketmaster"
	"event_recommender/internal/app"
	"event_recommender/internal/shared"
	mysqlrepo "event_recommender/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("schema setup failed")
	}

	// deps
	provider, err := ticketmaster.New(cfg.TicketBase, cfg.TicketKey, cfg.TicketRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Ticketmaster client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	rec := app.NewRecommendService(repo, provider, cache, cfg.CacheTTL, cfg.SearchTimeout)
	search := app.NewSearchService(repo, repo, provider, cache, cfg.CacheTTL)
	fav := app.NewFavoriteService(repo)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Rec: rec, Search: search, Fav: fav})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
