package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-diner/internal/config"
	"github.com/MKhiriev/go-diner/internal/handler"
	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/metrics"
	"github.com/MKhiriev/go-diner/internal/sequencer"
	"github.com/MKhiriev/go-diner/internal/server"
	"github.com/MKhiriev/go-diner/internal/service"
	"github.com/MKhiriev/go-diner/internal/store"
	"github.com/MKhiriev/go-diner/models"
	"github.com/redis/go-redis/v9"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-diner-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	seq, redisClient := newSequencer(ctx, cfg.Storage.Redis, log)

	m := metrics.New()
	storages := store.NewStorages(db, log)
	services := service.NewServices(
		storages,
		seq,
		m,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		cfg,
		log,
	)

	handlers, err := handler.NewHandlers(services, m, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	closers := []io.Closer{db}
	if redisClient != nil {
		closers = append(closers, redisClient)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, closers...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newSequencer returns the Redis-backed sequencer when an address is
// configured, and the in-memory one otherwise.
func newSequencer(ctx context.Context, cfg config.Redis, log *logger.Logger) (sequencer.Sequencer, *redis.Client) {
	if cfg.Address == "" {
		log.Info().Msg("order sequencer kept in memory")
		return sequencer.NewMemory(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("address", cfg.Address).Msg("error connecting to redis")
	}

	log.Info().Str("address", cfg.Address).Str("key", cfg.SequenceKey).Msg("order sequencer backed by redis")
	return sequencer.NewRedis(client, cfg.SequenceKey), client
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
