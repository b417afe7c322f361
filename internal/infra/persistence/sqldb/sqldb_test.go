package sqldb

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"pizzeria/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an ephemeral in-memory sqlite store, the same backend the
// test configuration bundle selects. The DSN is namespaced per test so shared
// cache does not leak rows between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database = config.Database{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_")),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := Open(cfg, logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database = config.Database{Driver: "oracle", DSN: "whatever"}

	_, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported database driver")
}
