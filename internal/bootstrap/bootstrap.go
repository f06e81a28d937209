package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/hyejin/scholarhub/internal/app/auth"
	appControllers "github.com/hyejin/scholarhub/internal/app/controllers"
	appRoutes "github.com/hyejin/scholarhub/internal/app/routes"
	appServices "github.com/hyejin/scholarhub/internal/app/services"
	"github.com/hyejin/scholarhub/internal/catalog"
	"github.com/hyejin/scholarhub/internal/config"
	appMiddleware "github.com/hyejin/scholarhub/internal/middleware"
	"github.com/hyejin/scholarhub/internal/pkg/logger"
	"github.com/hyejin/scholarhub/internal/storage/objectstore"
	"github.com/hyejin/scholarhub/internal/storage/recordstore"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ResumeService         appServices.ResumeService
	ScholarshipService    appServices.ScholarshipService
	ResumeController      *appControllers.ResumeController
	ScholarshipController *appControllers.ScholarshipController
	StudentResolver       appAuth.StudentResolver
	ObjectStore           objectstore.ObjectStore
	RecordStore           recordstore.RecordStore
	Catalog               *catalog.Catalog
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine; env vars may come from the host.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage constructs the object store and record store adapters.
// With a bucket and table configured it builds AWS-backed stores;
// otherwise it falls back to local filesystem storage so the server can
// run without managed resources.
func SetupStorage(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (objectstore.ObjectStore, recordstore.RecordStore, error) {
	if cfg.UseLocalStorage() {
		lgr.Warn().Str("path", cfg.Storage.LocalPath).Msg("No bucket/table configured, using local storage")

		objects, err := objectstore.NewLocalStore(cfg.Storage.LocalPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize local object store: %w", err)
		}

		records, err := recordstore.NewLocalStore(filepath.Join(cfg.Storage.LocalPath, "records.json"))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize local record store: %w", err)
		}

		return objects, records, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWS.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWS.Region))
	}
	if cfg.AWS.AccessKey != "" && cfg.AWS.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKey, cfg.AWS.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
			o.UsePathStyle = true
		}
	})
	dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})

	lgr.Info().Str("bucket", cfg.Storage.Bucket).Str("table", cfg.Storage.Table).Msg("Using managed storage")
	return objectstore.NewS3Store(s3Client, cfg.Storage.Bucket),
		recordstore.NewDynamoStore(dynamoClient, cfg.Storage.Table, cfg.Storage.PartitionKey),
		nil
}

// BuildDependencies initializes the catalog, storage adapters, services
// and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	// The catalog is loaded once and injected; nothing mutates it after
	// startup.
	if cfg.Catalog.Path != "" {
		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog file")
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		deps.Catalog = cat
		lgr.Info().Str("path", cfg.Catalog.Path).Int("entries", cat.Len()).Msg("Catalog loaded from file")
	} else {
		deps.Catalog = catalog.Default()
		lgr.Info().Int("entries", deps.Catalog.Len()).Msg("Using built-in seed catalog")
	}

	objects, records, err := SetupStorage(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize storage adapters")
		return nil, err
	}
	deps.ObjectStore = objects
	deps.RecordStore = records

	deps.ResumeService = appServices.NewResumeService(objects, records, cfg.Storage.PublicBasePath)
	deps.ScholarshipService = appServices.NewScholarshipService(deps.Catalog, records)
	deps.StudentResolver = appAuth.NewHeaderStudentResolver()

	deps.ResumeController = appControllers.NewResumeController(deps.ResumeService)
	deps.ScholarshipController = appControllers.NewScholarshipController(deps.ScholarshipService, deps.StudentResolver)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router, deps.ResumeController, deps.ScholarshipController)

	return router
}
