package usecase

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sanish-bhagat/Health-Sathi/config"
	"github.com/sanish-bhagat/Health-Sathi/internal/infrastructure/database"
	"github.com/sanish-bhagat/Health-Sathi/pkg/token"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a real store in a temp directory. Usecase tests that
// only exercise in-memory behavior still need a live handle because
// every store call goes through it.
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

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestTokenService() *token.Service {
	return token.NewService(config.TokenConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
}
