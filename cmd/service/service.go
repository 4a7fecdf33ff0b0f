package main

import (
	"context"
	"fmt"
	"os"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/mailer"
	"storefront/internal/router"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	newMongoClient  = database.NewMongoClient
	ensureIndexes   = database.EnsureMongoIndexes
	newRedisClient  = cache.NewRedisClient
	newMediaStore   = func(ctx context.Context, cfg storage.S3Config) (storage.Store, error) {
		return storage.NewS3Store(ctx, cfg)
	}
	newMailer     = mailer.New
	newWorkerPool = worker.NewPool
	startServer   = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc      = os.Exit
)

func run() error {
	cfg := loadConfig()
	ctx := context.Background()

	deps := router.Deps{}

	switch cfg.DBType {
	case "", "postgres":
		if cfg.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is not set")
		}
		if err := runMigrationsFn(cfg.PostgresURL); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		db, err := newPgxPool(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer db.Close()

		deps.Users = store.NewPostgresUserStore(db)
		deps.Products = store.NewPostgresProductStore(db)
		deps.Orders = store.NewPostgresOrderStore(db)
		deps.Health = db.Ping
	case "mongo":
		if cfg.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is not set")
		}
		client, err := newMongoClient(ctx, cfg.MongoURL)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		mdb := client.Database(cfg.MongoDB)
		if err := ensureIndexes(ctx, mdb); err != nil {
			return fmt.Errorf("ensure mongo indexes: %w", err)
		}

		deps.Users = store.NewMongoUserStore(mdb)
		deps.Products = store.NewMongoProductStore(mdb)
		deps.Orders = store.NewMongoOrderStore(mdb)
		deps.Health = func(ctx context.Context) error { return client.Ping(ctx, nil) }
	default:
		return fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()
	deps.Cache = rdb

	media, err := newMediaStore(ctx, storage.S3Config{
		Bucket:     cfg.MediaBucket,
		AccountID:  cfg.MediaAccountID,
		AccessKey:  cfg.MediaAccessKey,
		SecretKey:  cfg.MediaSecretKey,
		PublicBase: cfg.MediaPublicURL,
	})
	if err != nil {
		return fmt.Errorf("configure media host: %w", err)
	}
	deps.Media = media

	deps.Mail = newMailer(mailer.Config{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		User:        cfg.SMTPUser,
		Pass:        cfg.SMTPPass,
		AdminEmail:  cfg.AdminEmail,
		FrontendURL: cfg.FrontendURL,
	})

	jobs := newWorkerPool(cfg.WorkerCount)
	defer jobs.Stop()
	deps.Jobs = jobs

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, deps)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+cfg.Port)
}
