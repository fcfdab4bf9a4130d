package service

import (
	"context"
	"testing"

	"campwise/internal/config"
	"campwise/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testProfile = config.Identity{UserID: 1, Name: "Alex Morgan"}

// newTestDB поднимает базу SQLite в памяти с демонстрационными данными.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repository.Open(config.DB{Driver: "sqlite"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, repository.Migrate(context.Background(), db, zap.NewNop()))
	require.NoError(t, repository.Seed(context.Background(), db, testProfile))
	return db
}
