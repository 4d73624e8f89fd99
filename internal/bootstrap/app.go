package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/matching"
	"resume-matcher/internal/matching/taxonomy"
	"resume-matcher/internal/optimize"
	"resume-matcher/internal/queue"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server"
	"resume-matcher/internal/shared/storage/db"
	"resume-matcher/internal/shared/storage/object"
	localstore "resume-matcher/internal/shared/storage/object/local"
	s3store "resume-matcher/internal/shared/storage/object/s3"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/workerproc"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Store           object.ObjectStore
	Taxonomy        *taxonomy.Taxonomy
	TaxonomySource  string
	Engine          *matching.Engine
	AnalysesService *analyses.Service
	OptimizeService *optimize.Service
	Health          *health.Service
	Queue           queue.Client
	Jobs            *workerproc.Processor
}

// Build loads the taxonomy from the configured source and wires the engine,
// services and router around it.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := BuildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Store: store}

	tax, srcName, err := loadTaxonomy(ctx, cfg, store)
	if err != nil {
		return nil, err
	}
	app.Taxonomy = tax
	app.TaxonomySource = srcName
	telemetry.Info("taxonomy.loaded", map[string]any{
		"source":   srcName,
		"checksum": tax.Checksum(),
		"terms":    tax.Len(),
	})

	llmClient, err := llm.NewClient(cfg.LLMProvider)
	if err != nil {
		return nil, err
	}

	app.Engine = matching.New(tax)
	app.AnalysesService = analyses.NewService(app.Engine)
	app.OptimizeService = optimize.NewService(llmClient)
	app.Health = health.NewService(app.TaxonomySource, tax)
	app.Jobs = workerproc.NewProcessor(app.Store, app.AnalysesService)

	if cfg.QueueURL != "" {
		q, err := queue.NewSQSClient(ctx, cfg.AWSRegion, cfg.QueueURL)
		if err != nil {
			return nil, err
		}
		app.Queue = q
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: analyses.NewHandler(app.AnalysesService),
		OptimizeHandler: optimize.NewHandler(app.OptimizeService),
		Health:          app.Health,
		Taxonomy:        tax,
	})

	return app, nil
}

// connectDB opens the pool used for a Postgres taxonomy load.
var connectDB = func(ctx context.Context, databaseURL string) (*sql.DB, error) {
	return db.Connect(ctx, databaseURL, db.DefaultOptions())
}

// loadTaxonomy reads the taxonomy from the configured source. A Postgres pool
// lives only for the load; the process never queries the database again.
func loadTaxonomy(ctx context.Context, cfg config.Config, store object.ObjectStore) (*taxonomy.Taxonomy, string, error) {
	var src taxonomy.Source
	switch cfg.TaxonomySource {
	case config.TaxonomyStore:
		src = taxonomy.StoreSource{Store: store, Key: cfg.TaxonomyKey}
	case config.TaxonomyPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, "", fmt.Errorf("DATABASE_URL is required")
		}
		sqlDB, err := connectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, "", err
		}
		defer db.Close(sqlDB)
		src = taxonomy.PGSource{DB: sqlDB}
	default:
		src = taxonomy.BuiltinSource{}
	}

	tax, err := src.Load(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load taxonomy from %s: %w", src.Name(), err)
	}
	return tax, src.Name(), nil
}

// BuildStore returns the object store selected by OBJECT_STORE.
func BuildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}
