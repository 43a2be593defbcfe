package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/jsonlens/internal/domain/services"
	"github.com/ersonp/jsonlens/internal/infrastructure/codec/stdjson"
	"github.com/ersonp/jsonlens/internal/infrastructure/config"
	"github.com/ersonp/jsonlens/internal/infrastructure/historydb/sqlite"
)

// newDocument wires the document service against the real JSON engine.
func newDocument() *services.Document {
	return services.NewDocument(stdjson.New(), services.NewLocator())
}

// newHistory wires the history service against a real SQLite database in a
// temp directory.
func newHistory(t *testing.T, limit int) *services.History {
	t.Helper()

	repo, err := sqlite.NewRepository(config.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "history.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	require.NoError(t, repo.EnsureSchema(context.Background()))
	return services.NewHistory(repo, limit)
}
