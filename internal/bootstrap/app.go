package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/applications"
	"jobtrack-backend/internal/ingest"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/profiles"
	"jobtrack-backend/internal/queue"
	"jobtrack-backend/internal/settings"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/server"
	"jobtrack-backend/internal/shared/storage/db"
	"jobtrack-backend/internal/shared/storage/object"
	localstore "jobtrack-backend/internal/shared/storage/object/local"
	s3store "jobtrack-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	Queue  queue.Client

	ProfilesService     *profiles.Service
	JobsService         *jobs.Service
	ApplicationsService *applications.Service
	SettingsService     *settings.Service
	IngestService       *ingest.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	queueClient, err := buildQueue(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Queue:  queueClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             app.Config,
		ProfileHandler:     profiles.NewHandler(app.ProfilesService),
		JobHandler:         jobs.NewHandler(app.JobsService),
		ApplicationHandler: applications.NewHandler(app.ApplicationsService),
		SettingsHandler:    settings.NewHandler(app.SettingsService),
		IngestHandler:      ingest.NewHandler(app.IngestService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildQueue(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if strings.TrimSpace(cfg.IngestQueueURL) == "" {
		return nil, nil
	}
	return queue.NewSQSClient(ctx)
}

func buildServices(app *App) {
	var (
		profileRepo profiles.Repo
		jobRepo     jobs.Repo
		appRepo     applications.Repo
		settingRepo settings.Repo
		runRepo     ingest.RunRepo
	)
	if app.DB != nil {
		profileRepo = &profiles.PGRepo{DB: app.DB}
		jobRepo = &jobs.PGRepo{DB: app.DB}
		appRepo = &applications.PGRepo{DB: app.DB}
		settingRepo = &settings.PGRepo{DB: app.DB}
		runRepo = &ingest.PGRunRepo{DB: app.DB}
	} else {
		profileRepo = profiles.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		appRepo = applications.NewMemoryRepo()
		settingRepo = settings.NewMemoryRepo()
		runRepo = ingest.NewMemoryRunRepo()
	}

	profilesSvc := &profiles.Service{Repo: profileRepo, Store: app.Store}
	jobsSvc := &jobs.Service{Repo: jobRepo, Profiles: profilesSvc}
	profilesSvc.Rescorer = jobsSvc
	settingsSvc := &settings.Service{Repo: settingRepo}
	appsSvc := &applications.Service{
		Repo:     appRepo,
		Jobs:     jobsSvc,
		Profiles: profilesSvc,
		Settings: settingsSvc,
	}
	ingestSvc := &ingest.Service{
		Sources:      buildSources(app.Config),
		Jobs:         jobsSvc,
		Applications: appsSvc,
		Runs:         runRepo,
		Queue:        app.Queue,
		JobCap:       app.Config.IngestJobCap,
	}

	app.ProfilesService = profilesSvc
	app.JobsService = jobsSvc
	app.ApplicationsService = appsSvc
	app.SettingsService = settingsSvc
	app.IngestService = ingestSvc
}

func buildSources(cfg config.Config) []ingest.Source {
	client := &http.Client{Timeout: 30 * time.Second}
	var sources []ingest.Source
	for _, name := range cfg.IngestSources {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "remotive":
			sources = append(sources, &ingest.RemotiveSource{Client: client, UserAgent: cfg.HTTPUserAgent})
		case "arbeitnow":
			sources = append(sources, &ingest.ArbeitnowSource{Client: client, UserAgent: cfg.HTTPUserAgent})
		default:
			log.Printf("bootstrap: unknown ingest source %q, skipping", name)
		}
	}
	return sources
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
