package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func stringCmd(val string, err error) *redis.StringCmd {
	cmd := redis.NewStringCmd(context.Background())
	if err != nil {
		cmd.SetErr(err)
	} else {
		cmd.SetVal(val)
	}
	return cmd
}

func TestGetApprovedProducts(t *testing.T) {
	products := []model.Product{{ID: "p1", Name: "Widget", IsApproved: true}}
	raw, err := json.Marshal(products)
	require.NoError(t, err)

	c := &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			require.Equal(t, approvedProductsKey, key)
			return stringCmd(string(raw), nil)
		},
	}
	got, ok := GetApprovedProducts(context.Background(), c)
	require.True(t, ok)
	require.Len(t, got, 1)
	require.Equal(t, "Widget", got[0].Name)

	// miss
	c = &FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return stringCmd("", redis.Nil)
		},
	}
	_, ok = GetApprovedProducts(context.Background(), c)
	require.False(t, ok)

	// corrupt payload
	c = &FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return stringCmd("{not json", nil)
		},
	}
	_, ok = GetApprovedProducts(context.Background(), c)
	require.False(t, ok)
}

func TestSetApprovedProducts(t *testing.T) {
	set := false
	c := &FakeCache{
		SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
			set = true
			require.Equal(t, approvedProductsKey, key)
			require.Equal(t, approvedProductsTTL, ttl)
			return redis.NewStatusCmd(context.Background())
		},
	}
	SetApprovedProducts(context.Background(), c, []model.Product{{ID: "p1"}})
	require.True(t, set)
}

func TestInvalidateApprovedProducts(t *testing.T) {
	deleted := false
	c := &FakeCache{
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			deleted = true
			require.Equal(t, []string{approvedProductsKey}, keys)
			cmd := redis.NewIntCmd(context.Background())
			cmd.SetErr(errors.New("down"))
			return cmd
		},
	}
	// failure is swallowed
	InvalidateApprovedProducts(context.Background(), c)
	require.True(t, deleted)
}
