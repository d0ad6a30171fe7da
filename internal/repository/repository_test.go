package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sanish-bhagat/Health-Sathi/config"
	"github.com/sanish-bhagat/Health-Sathi/internal/infrastructure/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh store in a temp directory for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.StoreConfig{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		BusyTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	return db
}
