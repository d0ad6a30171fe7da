package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sanish-bhagat/Health-Sathi/config"
	domainRepo "github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.StoreConfig {
	t.Helper()
	return config.StoreConfig{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		BusyTimeout: 5 * time.Second,
	}
}

func TestOpen_CreatesStoreFile(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg)
	require.NoError(t, err)
	defer Close(db)

	_, err = os.Stat(cfg.Path)
	assert.NoError(t, err, "store file should exist after Open")
}

func TestOpen_ReopenPreservesData(t *testing.T) {
	cfg := testConfig(t)

	db1, err := Open(cfg)
	require.NoError(t, err)

	err = db1.Exec(`INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		VALUES ('u1', 'a@x.com', 'hash', 'PATIENT', datetime('now'), datetime('now'))`).Error
	require.NoError(t, err)
	require.NoError(t, Close(db1))

	db2, err := Open(cfg)
	require.NoError(t, err)
	defer Close(db2)

	var count int64
	require.NoError(t, db2.Raw("SELECT COUNT(*) FROM users").Scan(&count).Error)
	assert.Equal(t, int64(1), count, "record inserted before reopen must survive it")
}

func TestOpen_Idempotent(t *testing.T) {
	cfg := testConfig(t)

	for i := 0; i < 3; i++ {
		db, err := Open(cfg)
		require.NoErrorf(t, err, "Open() iteration %d", i)
		require.NoError(t, Close(db))
	}

	db, err := Open(cfg)
	require.NoError(t, err)
	defer Close(db)

	for _, table := range []string{"users", "reports"} {
		var name string
		err := db.Raw(
			"SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table,
		).Scan(&name).Error
		require.NoError(t, err)
		assert.Equalf(t, table, name, "table %q missing after repeated opens", table)
	}
}

func TestOpen_SecondaryIndexes(t *testing.T) {
	cfg := testConfig(t)

	db, err := Open(cfg)
	require.NoError(t, err)
	defer Close(db)

	var indexes []string
	require.NoError(t, db.Raw(
		"SELECT name FROM sqlite_master WHERE type='index' AND name LIKE 'idx_%' ORDER BY name",
	).Scan(&indexes).Error)

	assert.ElementsMatch(t, []string{
		"idx_users_email",
		"idx_users_role",
		"idx_reports_user_id",
		"idx_reports_target_doctor_id",
		"idx_reports_timestamp",
	}, indexes)
}

func TestOpen_InvalidPath(t *testing.T) {
	cfg := config.StoreConfig{
		Path:        "/nonexistent/dir/test.db",
		BusyTimeout: time.Second,
	}

	_, err := Open(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainRepo.ErrStoreUnavailable)
}

func TestClose_NilHandle(t *testing.T) {
	assert.NoError(t, Close(nil))
}
