// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lingualink/internal/model"
	"lingualink/pkg/database"
)

// NewTestDB opens a migrated SQLite database in a per-test temp directory.
// The connection is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lingualink_test.db")
	db, err := database.NewGormDBFromDSN("sqlite://"+path, database.Options{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
