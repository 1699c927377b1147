package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/edustream/videos-ms-go/internal/cdn"
	"github.com/edustream/videos-ms-go/internal/config"
	"github.com/edustream/videos-ms-go/internal/db"
	"github.com/edustream/videos-ms-go/internal/extractor"
	workerHandler "github.com/edustream/videos-ms-go/internal/handler/worker"
	"github.com/edustream/videos-ms-go/internal/lock"
	"github.com/edustream/videos-ms-go/internal/logger"
	"github.com/edustream/videos-ms-go/internal/optimiser"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/repository/mariadb"
	"github.com/edustream/videos-ms-go/internal/storage"
	"github.com/edustream/videos-ms-go/internal/task"
	"github.com/edustream/videos-ms-go/internal/transcoder"
	purgeSvc "github.com/edustream/videos-ms-go/internal/usecase/purge"
	videoSvc "github.com/edustream/videos-ms-go/internal/usecase/video"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	strg := initStorage(cfg)

	videoRepo := mariadb.NewVideoRepository(database.DB)
	purgeRepo := mariadb.NewPurgeRepository(database.DB)

	transcoderClient := transcoder.NewClient(
		cfg.TranscoderBaseURL,
		cfg.TranscoderToken,
		cfg.TranscoderProject,
		cfg.TranscoderTransform,
		cfg.StorageAccountName,
	)
	purger := cdn.NewClient(cdn.Config{
		TenantID:       cfg.CdnTenantID,
		ClientID:       cfg.CdnClientID,
		ClientSecret:   cfg.CdnClientSecret,
		SubscriptionID: cfg.CdnSubscriptionID,
		ResourceGroup:  cfg.CdnResourceGroup,
		ProfileName:    cfg.CdnProfileName,
		EndpointName:   cfg.CdnEndpointName,
	})
	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
	posterLock := lock.NewRedisLock(cfg.RedisAddr, cfg.RedisPassword)
	ffmpeg := extractor.NewFfmpeg(cfg.FfmpegPath)
	fo := optimiser.NewOptimiser()

	submitSvc := videoSvc.NewTranscodeSubmitter(videoRepo, transcoderClient, dispatcher)
	pollSvc := videoSvc.NewTranscodePoller(videoRepo, transcoderClient, dispatcher)
	posterSvc := videoSvc.NewPosterExtractor(videoRepo, strg, ffmpeg, posterLock, fo, dispatcher)
	initiateSvc := purgeSvc.NewPurgeInitiator(purgeRepo, purger, dispatcher)
	trackSvc := purgeSvc.NewPurgeTracker(purgeRepo, purger, dispatcher)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeSubmitTranscode, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseSubmitTranscodePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.SubmitTranscodeHandler(ctx, p, submitSvc)
	})
	mux.HandleFunc(task.TypePollTranscode, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParsePollTranscodePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.PollTranscodeHandler(ctx, p, pollSvc)
	})
	mux.HandleFunc(task.TypeExtractPoster, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseExtractPosterPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.ExtractPosterHandler(ctx, p, posterSvc)
	})
	mux.HandleFunc(task.TypeInitiatePurge, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseInitiatePurgePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.InitiatePurgeHandler(ctx, p, initiateSvc)
	})
	mux.HandleFunc(task.TypeTrackPurge, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseTrackPurgePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.TrackPurgeHandler(ctx, p, trackSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func initStorage(cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(context.Background(), "❌  Failed to initialize storage client: %v", err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
