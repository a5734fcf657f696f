package persistence

import (
	"context"
	"testing"

	"github.com/rentals/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase_StatsAndPing(t *testing.T) {
	db := &Database{DB: newTestDB(t)}

	require.NoError(t, db.Ping(context.Background()))

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpen)
	assert.Equal(t, stats.Open, stats.InUse+stats.Idle)
}

func TestIsPostgres(t *testing.T) {
	assert.False(t, isPostgres(newTestDB(t)))

	gdb, _, mockDB := newMockDB(t)
	defer mockDB.Close()
	assert.True(t, isPostgres(gdb))
}

func TestDatabase_Close(t *testing.T) {
	gdb, mock, mockDB := newMockDB(t)
	mock.ExpectClose()

	require.NoError(t, (&Database{DB: gdb}).Close())
	assert.NoError(t, mock.ExpectationsWereMet())
	_ = mockDB
}

func TestNewDatabase_UnreachableHost(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping connection attempt in short mode")
	}
	cfg := &config.DatabaseConfig{
		URL:          "postgres://127.0.0.1:1/rentals",
		User:         "postgres",
		Password:     "postgres",
		SSLMode:      "disable",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	db, err := NewDatabase(cfg)

	assert.Nil(t, db)
	assert.Error(t, err)
}
