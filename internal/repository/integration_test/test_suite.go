package integration_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"courier-sync/internal/pkg/config"
	"courier-sync/internal/store"
	"courier-sync/pkg/logger/zap_adapter"

	"github.com/stretchr/testify/require"
)

// NewStore opens a store at the latest schema in a per-test directory.
// The store is closed when the test ends.
func NewStore(t *testing.T) *store.Store {
	t.Helper()

	cfg := &config.Store{
		Path:          filepath.Join(t.TempDir(), "courier-sync.db"),
		SchemaVersion: store.LatestVersion,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s := store.New(cfg, zap_adapter.NewNop())
	require.NoError(t, s.Open(ctx))

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}
