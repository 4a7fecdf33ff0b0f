package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"storefront/internal/cache"
	"storefront/internal/model"
	"storefront/internal/storage"
	"storefront/internal/store"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type syncPool struct{}

func (syncPool) Submit(t worker.Task) { t() }
func (syncPool) Stop()                {}

func quietCache() (*cache.FakeCache, *bool) {
	invalidated := false
	return &cache.FakeCache{
		DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			invalidated = true
			return redis.NewIntResult(1, nil)
		},
	}, &invalidated
}

func newCtx(e *echo.Echo, param, value string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if param != "" {
		ctx.SetParamNames(param)
		ctx.SetParamValues(value)
	}
	return ctx, rec
}

func TestApproveVendorHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing vendor", func(t *testing.T) {
		us := &store.FakeUserStore{
			SetApprovedFn: func(ctx context.Context, id string) error { return store.ErrNotFound },
		}
		ctx, rec := newCtx(e, "vendor_id", "ghost")
		require.NoError(t, ApproveVendorHandler(us)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ok and idempotent", func(t *testing.T) {
		calls := 0
		us := &store.FakeUserStore{
			SetApprovedFn: func(ctx context.Context, id string) error {
				calls++
				require.Equal(t, "v1", id)
				return nil
			},
		}
		for i := 0; i < 2; i++ {
			ctx, rec := newCtx(e, "vendor_id", "v1")
			require.NoError(t, ApproveVendorHandler(us)(ctx))
			require.Equal(t, http.StatusOK, rec.Code)
		}
		require.Equal(t, 2, calls)
	})
}

func TestDeleteVendorHandler(t *testing.T) {
	e := echo.New()

	t.Run("removes catalog with the account", func(t *testing.T) {
		var deleted []string
		ps := &store.FakeProductStore{
			ListByVendorFn: func(ctx context.Context, vendorID string) ([]model.Product, error) {
				return []model.Product{{ID: "p1"}, {ID: "p2"}}, nil
			},
			DeleteFn: func(ctx context.Context, id string) error {
				deleted = append(deleted, id)
				return nil
			},
		}
		us := &store.FakeUserStore{
			DeleteFn: func(ctx context.Context, id string) error {
				require.Equal(t, "v1", id)
				return nil
			},
		}
		cch, invalidated := quietCache()
		ctx, rec := newCtx(e, "vendor_id", "v1")
		require.NoError(t, DeleteVendorHandler(us, ps, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []string{"p1", "p2"}, deleted)
		require.True(t, *invalidated)
	})

	t.Run("missing vendor", func(t *testing.T) {
		ps := &store.FakeProductStore{
			ListByVendorFn: func(ctx context.Context, vendorID string) ([]model.Product, error) {
				return nil, nil
			},
		}
		us := &store.FakeUserStore{
			DeleteFn: func(ctx context.Context, id string) error { return store.ErrNotFound },
		}
		cch, _ := quietCache()
		ctx, rec := newCtx(e, "vendor_id", "ghost")
		require.NoError(t, DeleteVendorHandler(us, ps, cch)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestApproveProductHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing product", func(t *testing.T) {
		ps := &store.FakeProductStore{
			SetApprovedFn: func(ctx context.Context, id string) (*model.Product, error) {
				return nil, store.ErrNotFound
			},
		}
		cch, _ := quietCache()
		ctx, rec := newCtx(e, "product_id", "ghost")
		require.NoError(t, ApproveProductHandler(ps, cch)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ok invalidates the listing", func(t *testing.T) {
		ps := &store.FakeProductStore{
			SetApprovedFn: func(ctx context.Context, id string) (*model.Product, error) {
				return &model.Product{ID: id, Name: "Mug", IsApproved: true}, nil
			},
		}
		cch, invalidated := quietCache()
		ctx, rec := newCtx(e, "product_id", "p1")
		require.NoError(t, ApproveProductHandler(ps, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, *invalidated)
		require.Contains(t, rec.Body.String(), `"approved"`)
	})
}

func TestUpdateProductHandler(t *testing.T) {
	e := echo.New()
	e.Validator = okValidator{}

	newBodyCtx := func(body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("product_id")
		ctx.SetParamValues("p1")
		return ctx, rec
	}

	t.Run("no ownership filter", func(t *testing.T) {
		ps := &store.FakeProductStore{
			UpdateFn: func(ctx context.Context, id string, upd store.ProductUpdate) (*model.Product, error) {
				require.Equal(t, "p1", id)
				require.NotNil(t, upd.Price)
				return &model.Product{ID: id, VendorID: "someone-else", Price: *upd.Price}, nil
			},
		}
		cch, _ := quietCache()
		ctx, rec := newBodyCtx(`{"price":9.99}`)
		require.NoError(t, UpdateProductHandler(ps, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing product", func(t *testing.T) {
		ps := &store.FakeProductStore{
			UpdateFn: func(ctx context.Context, id string, upd store.ProductUpdate) (*model.Product, error) {
				return nil, store.ErrNotFound
			},
		}
		cch, _ := quietCache()
		ctx, rec := newBodyCtx(`{"name":"x"}`)
		require.NoError(t, UpdateProductHandler(ps, cch)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	e := echo.New()

	t.Run("missing product", func(t *testing.T) {
		ps := &store.FakeProductStore{
			GetByIDFn: func(ctx context.Context, id string) (*model.Product, error) {
				return nil, store.ErrNotFound
			},
		}
		cch, _ := quietCache()
		ctx, rec := newCtx(e, "product_id", "ghost")
		h := DeleteProductHandler(ps, &storage.FakeStore{}, syncPool{}, cch)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("asset cleanup failure does not fail the request", func(t *testing.T) {
		ps := &store.FakeProductStore{
			GetByIDFn: func(ctx context.Context, id string) (*model.Product, error) {
				return &model.Product{ID: id, AssetKey: "products/x.jpg"}, nil
			},
			DeleteFn: func(ctx context.Context, id string) error { return nil },
		}
		var mu sync.Mutex
		var cleaned string
		media := &storage.FakeStore{
			DeleteFn: func(ctx context.Context, key string) error {
				mu.Lock()
				cleaned = key
				mu.Unlock()
				return errors.New("bucket down")
			},
		}
		cch, invalidated := quietCache()
		ctx, rec := newCtx(e, "product_id", "p1")
		h := DeleteProductHandler(ps, media, syncPool{}, cch)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "products/x.jpg", cleaned)
		require.True(t, *invalidated)
	})
}

func TestListUsersHandler(t *testing.T) {
	e := echo.New()
	us := &store.FakeUserStore{
		ListByRoleFn: func(ctx context.Context, role model.Role) ([]model.User, error) {
			require.Equal(t, model.RoleUser, role)
			return []model.User{{ID: "u1", Email: "alice@example.com", Role: role, PasswordHash: "hash"}}, nil
		},
	}
	ctx, rec := newCtx(e, "", "")
	require.NoError(t, ListUsersHandler(us)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "alice@example.com")
	require.NotContains(t, rec.Body.String(), "hash")
}
