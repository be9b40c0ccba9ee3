// Package main Memorial Search API
// @title Memorial Search API
// @version 1.0
// @description A unified search and sync service for community, feed and scraped obituary sources
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@memorialsearch.org
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/aviwein/memorial-search/docs"
	"github.com/aviwein/memorial-search/internal/filter"
	"github.com/aviwein/memorial-search/internal/ingest"
	"github.com/aviwein/memorial-search/internal/router"
	"github.com/aviwein/memorial-search/internal/server"
	"github.com/aviwein/memorial-search/internal/session"
	"github.com/aviwein/memorial-search/internal/storage/es"
	"github.com/aviwein/memorial-search/internal/storage/pg"
	"github.com/aviwein/memorial-search/internal/syncer"
	"github.com/aviwein/memorial-search/internal/unify"
	pkgserver "github.com/aviwein/memorial-search/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	s := server.New(sCfg)

	pools, err := pg.NewDualPools(s.Context(), cfg.Pg)
	if err != nil {
		slog.Error("Failed to create database pools", "error", err)
		os.Exit(1)
		return
	}

	s.SetupMiddlewares().
		SetupHealthChecks(pkgserver.NewPingHealthChecker(pools.Public)).
		SetupOpenApi()

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Memorial Search API is running")
	})

	scrapedReader, err := es.NewScrapedReader(cfg.Es)
	if err != nil {
		slog.Error("Failed to create scraped source reader", "error", err)
		os.Exit(1)
		return
	}
	indexer, err := es.NewIndexer(cfg.Es)
	if err != nil {
		slog.Error("Failed to create scraped indexer", "error", err)
		os.Exit(1)
		return
	}

	tagger, err := unify.NewTagger(s.Context(), pg.NewNotableReader(pools.Public))
	if err != nil {
		slog.Warn("Failed to load notable figures, continuing without tagging", "error", err)
		tagger = unify.NewTaggerFromNames(nil)
	}

	sess := session.New(
		pg.NewPrimaryReader(pools.Public),
		pg.NewFeedReader(pools.Public),
		scrapedReader,
		tagger,
	)
	go func() {
		if err := sess.Load(s.Context()); err != nil {
			slog.Error("Initial load did not complete", "error", err)
		}
	}()

	pipeline := filter.NewPipeline(pg.NewCommunityReader(pools.Public))

	feedSources, err := loadFeedSources(cfg.FeedSourcesPath)
	if err != nil {
		slog.Error("Failed to load feed sources", "error", err)
		os.Exit(1)
		return
	}

	triggers := []syncer.Trigger{
		ingest.NewFeedPipeline(pg.NewFeedStorer(pools.Session), feedSources),
		ingest.NewScrapedSyncV2(pg.NewScrapedStaging(pools.Session), indexer),
	}

	obituariesRouter := router.NewObituariesRouter(s.Echo, sess, pipeline, triggers...)
	obituariesRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		sess.Close()
		pools.Close()
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

func loadFeedSources(path string) ([]ingest.FeedSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.LoadFeedSources(f)
}
