package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type fakeRedisClient struct {
	FakeCache
	pingErr error
}

func (f *fakeRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetErr(f.pingErr)
	return cmd
}

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(func() {
		redisNewClient = func(opt *redis.Options) redisClient { return redis.NewClient(opt) }
	})

	redisNewClient = func(opt *redis.Options) redisClient {
		require.Equal(t, "localhost:6379", opt.Addr)
		require.Equal(t, "pw", opt.Password)
		require.Equal(t, 2, opt.DB)
		return &fakeRedisClient{}
	}
	c, err := NewRedisClient("localhost:6379", "pw", 2)
	require.NoError(t, err)
	require.NotNil(t, c)

	redisNewClient = func(*redis.Options) redisClient {
		return &fakeRedisClient{pingErr: errors.New("refused")}
	}
	_, err = NewRedisClient("localhost:6379", "", 0)
	require.Error(t, err)
}
