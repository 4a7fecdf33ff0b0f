package products

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/cache"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestListApprovedHandler(t *testing.T) {
	e := echo.New()

	t.Run("cache hit skips the store", func(t *testing.T) {
		raw, err := json.Marshal([]model.Product{{ID: "p1", Name: "Mug", IsApproved: true}})
		require.NoError(t, err)
		cch := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult(string(raw), nil)
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, ListApprovedHandler(&store.FakeProductStore{}, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Mug")
	})

	t.Run("cache miss fills from the store", func(t *testing.T) {
		filled := false
		cch := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(ctx context.Context, key string, val any, ttl time.Duration) *redis.StatusCmd {
				filled = true
				return redis.NewStatusResult("OK", nil)
			},
		}
		ps := &store.FakeProductStore{
			ListApprovedFn: func(ctx context.Context) ([]model.Product, error) {
				return []model.Product{{ID: "p2", Name: "Bowl", IsApproved: true}}, nil
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		require.NoError(t, ListApprovedHandler(ps, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, filled)
		require.Contains(t, rec.Body.String(), "Bowl")
	})
}

func TestGetProductHandler(t *testing.T) {
	e := echo.New()

	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("product_id")
		ctx.SetParamValues("p1")
		return ctx, rec
	}

	t.Run("missing", func(t *testing.T) {
		ps := &store.FakeProductStore{
			GetByIDFn: func(ctx context.Context, id string) (*model.Product, error) {
				return nil, store.ErrNotFound
			},
		}
		ctx, rec := newCtx()
		require.NoError(t, GetProductHandler(ps)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("pending is invisible", func(t *testing.T) {
		ps := &store.FakeProductStore{
			GetByIDFn: func(ctx context.Context, id string) (*model.Product, error) {
				return &model.Product{ID: id, IsApproved: false}, nil
			},
		}
		ctx, rec := newCtx()
		require.NoError(t, GetProductHandler(ps)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		ps := &store.FakeProductStore{
			GetByIDFn: func(ctx context.Context, id string) (*model.Product, error) {
				return &model.Product{ID: id, Name: "Mug", IsApproved: true}, nil
			},
		}
		ctx, rec := newCtx()
		require.NoError(t, GetProductHandler(ps)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"approved"`)
	})
}
