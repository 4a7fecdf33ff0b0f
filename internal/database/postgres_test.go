package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewPgxPoolBadURL(t *testing.T) {
	_, err := NewPgxPool(context.Background(), "://not-a-url")
	require.Error(t, err)
}

func TestNewPgxPoolUnreachable(t *testing.T) {
	old := connectRetryDelay
	connectRetryDelay = time.Millisecond
	t.Cleanup(func() { connectRetryDelay = old })

	// parses fine, every ping attempt fails
	_, err := NewPgxPool(context.Background(), "postgres://user:pw@127.0.0.1:1/none")
	require.Error(t, err)
}

func TestRunMigrationsBadURL(t *testing.T) {
	require.Error(t, RunMigrations("postgres://user:pw@127.0.0.1:1/none"))
}
