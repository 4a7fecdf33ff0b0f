package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/mailer"
	"storefront/internal/storage"
	"storefront/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	newPgxPool = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	newMongoClient = database.NewMongoClient
	ensureIndexes = database.EnsureMongoIndexes
	newRedisClient = cache.NewRedisClient
	newMediaStore = func(ctx context.Context, cfg storage.S3Config) (storage.Store, error) {
		return storage.NewS3Store(ctx, cfg)
	}
	newMailer = mailer.New
	newWorkerPool = worker.NewPool
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

// stubSuccess swaps every constructor for a fake that succeeds.
func stubSuccess(called map[string]bool) {
	loadConfig = func() *config.Config {
		return &config.Config{
			Port:          "8080",
			DBType:        "postgres",
			PostgresURL:   "postgres://test",
			RedisAddr:     "127.0.0.1:6379",
			RedisPassword: "pw",
			RedisDB:       1,
			WorkerCount:   1,
		}
	}
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	newRedisClient = func(addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	newMediaStore = func(ctx context.Context, cfg storage.S3Config) (storage.Store, error) {
		called["media"] = true
		return &storage.FakeStore{}, nil
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		return nil
	}
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	stubSuccess(called)

	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["migrate"])
	require.True(t, called["redis"])
	require.True(t, called["media"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
	require.True(t, called["redisClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)

	loadConfig = func() *config.Config { return &config.Config{DBType: "postgres"} }
	require.Error(t, run()) // missing postgres url

	loadConfig = func() *config.Config { return &config.Config{DBType: "oracle"} }
	require.Error(t, run()) // unsupported backend

	loadConfig = func() *config.Config {
		return &config.Config{DBType: "postgres", PostgresURL: "postgres://test", Port: "8080", WorkerCount: 1}
	}
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{CloseFn: func() {}}, nil }
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	newRedisClient = func(string, string, int) (cache.Cache, error) { return &cache.FakeCache{}, nil }
	newMediaStore = func(context.Context, storage.S3Config) (storage.Store, error) {
		return nil, errors.New("media")
	}
	require.Error(t, run())

	newMediaStore = func(context.Context, storage.S3Config) (storage.Store, error) {
		return &storage.FakeStore{}, nil
	}
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestRunMongoBackend(t *testing.T) {
	t.Cleanup(restoreGlobals)

	loadConfig = func() *config.Config { return &config.Config{DBType: "mongo"} }
	require.Error(t, run()) // missing mongo url
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	stubSuccess(called)
	main()
	require.True(t, called["start"])
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	loadConfig = func() *config.Config { return &config.Config{DBType: "postgres"} }
	main()
	require.Equal(t, 1, exitCode)
}
