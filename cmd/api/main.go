package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/edustream/videos-ms-go/internal/cache"
	"github.com/edustream/videos-ms-go/internal/cdn"
	"github.com/edustream/videos-ms-go/internal/config"
	"github.com/edustream/videos-ms-go/internal/db"
	"github.com/edustream/videos-ms-go/internal/handler"
	"github.com/edustream/videos-ms-go/internal/handler/api"
	"github.com/edustream/videos-ms-go/internal/logger"
	cMiddleware "github.com/edustream/videos-ms-go/internal/middleware"
	"github.com/edustream/videos-ms-go/internal/optimiser"
	"github.com/edustream/videos-ms-go/internal/port"
	"github.com/edustream/videos-ms-go/internal/renderer"
	"github.com/edustream/videos-ms-go/internal/repository/mariadb"
	"github.com/edustream/videos-ms-go/internal/sas"
	"github.com/edustream/videos-ms-go/internal/storage"
	"github.com/edustream/videos-ms-go/internal/task"
	"github.com/edustream/videos-ms-go/internal/transcoder"
	documentSvc "github.com/edustream/videos-ms-go/internal/usecase/document"
	purgeSvc "github.com/edustream/videos-ms-go/internal/usecase/purge"
	videoSvc "github.com/edustream/videos-ms-go/internal/usecase/video"
	msuuid "github.com/edustream/videos-ms-go/internal/uuid"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	strg := initStorage(ctx, cfg)

	signer, err := sas.NewSigner(cfg.StorageAccountName, cfg.StorageAccountKey)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise SAS signer: %v", err)
		os.Exit(1)
	}

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

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured, caching and task dispatch are disabled")
	}

	videoRepo := mariadb.NewVideoRepository(database.DB)
	purgeRepo := mariadb.NewPurgeRepository(database.DB)
	documentRepo := mariadb.NewDocumentRepository(database.DB)
	fo := optimiser.NewOptimiser()

	r := initRouter(ctx)

	// public lookup by opaque UID, no auth
	getVideoSvc := videoSvc.NewVideoGetter(videoRepo, signer, cfg.StorageBaseURL, cfg.MediaBaseURL)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithVideoUID()).
		Get("/videos/{uid}", api.GetVideoHandler(rendererSvc, getVideoSvc))

	r.Group(func(r chi.Router) {
		r.Use(cMiddleware.WithAuth(cfg.JWTPublicKey))

		createVideoSvc := videoSvc.NewVideoCreator(videoRepo, strg, transcoderClient, signer, msuuid.NewUUID, cfg.StorageBaseURL)
		r.Post("/videos", api.CreateVideoHandler(createVideoSvc))

		uploadFinaliserSvc := videoSvc.NewUploadFinaliser(videoRepo, dispatcher)
		r.With(cMiddleware.WithID()).
			Post("/videos/{id}/finalise_upload", api.FinaliseUploadHandler(uploadFinaliserSvc))

		editVideoSvc := videoSvc.NewVideoEditor(videoRepo, dispatcher, ca)
		r.With(cMiddleware.WithID()).
			Patch("/videos/{id}", api.EditVideoHandler(editVideoSvc))

		deleteVideoSvc := videoSvc.NewVideoDeleter(videoRepo, ca)
		r.With(cMiddleware.WithID()).
			Delete("/videos/{id}", api.DeleteVideoHandler(deleteVideoSvc))

		requestPurgeSvc := purgeSvc.NewPurgeRequester(purgeRepo, dispatcher, msuuid.NewUUID)
		r.Post("/purges", api.RequestPurgeHandler(requestPurgeSvc))

		getPurgeSvc := purgeSvc.NewPurgeGetter(purgeRepo, purger)
		r.With(cMiddleware.WithID()).
			Get("/purges/{id}", api.GetPurgeHandler(getPurgeSvc))

		uploadDocumentSvc := documentSvc.NewDocumentUploader(documentRepo, strg, fo, msuuid.NewUUID, cfg.DocumentsContainer)
		r.Post("/documents", api.UploadDocumentHandler(uploadDocumentSvc))

		replaceDocumentSvc := documentSvc.NewDocumentReplacer(documentRepo, strg, fo, requestPurgeSvc, cfg.DocumentsContainer)
		r.With(cMiddleware.WithID()).
			Put("/documents/{id}", api.ReplaceDocumentHandler(replaceDocumentSvc))

		deleteDocumentSvc := documentSvc.NewDocumentDeleter(documentRepo, strg, requestPurgeSvc, cfg.DocumentsContainer)
		r.With(cMiddleware.WithID()).
			Delete("/documents/{id}", api.DeleteDocumentHandler(deleteDocumentSvc))
	})

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize storage client: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
