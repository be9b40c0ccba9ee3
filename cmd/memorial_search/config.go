package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aviwein/memorial-search/internal/storage/es"
	"github.com/aviwein/memorial-search/internal/storage/pg"
	"github.com/aviwein/memorial-search/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type MemorialSearchConfig struct {
	Pg              pg.DualPoolConfig
	Es              es.ClientConfig
	FeedSourcesPath string
}

func (as *AppConfig) Load() (*MemorialSearchConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/memorial_search/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	pgCfg := pg.DualPoolConfig{
		PublicConnStr:  os.Getenv("PG_PUBLIC_CONNECTION_STRING"),
		SessionConnStr: os.Getenv("PG_SESSION_CONNECTION_STRING"),
	}
	if pgCfg.PublicConnStr == "" {
		return nil, fmt.Errorf("PG_PUBLIC_CONNECTION_STRING is not set")
	}
	if pgCfg.SessionConnStr == "" {
		// A single connection string still keeps the handles distinct;
		// they just point at the same database role.
		pgCfg.SessionConnStr = pgCfg.PublicConnStr
	}

	esCfg := es.ClientConfig{
		Addresses: strings.Split(os.Getenv("ES_ADDRESSES"), ","),
		IndexName: os.Getenv("ES_INDEX_NAME"),
		Username:  os.Getenv("ES_USERNAME"),
		Password:  os.Getenv("ES_PASSWORD"),
	}
	if len(esCfg.Addresses) == 0 || esCfg.Addresses[0] == "" || esCfg.IndexName == "" {
		return nil, fmt.Errorf("elasticsearch configuration is incomplete: addresses or index name is missing")
	}

	feedSourcesPath := os.Getenv("FEED_SOURCES_PATH")
	if feedSourcesPath == "" {
		feedSourcesPath = "cmd/memorial_search/sources.yaml"
	}

	return &MemorialSearchConfig{
		Pg:              pgCfg,
		Es:              esCfg,
		FeedSourcesPath: feedSourcesPath,
	}, nil
}
