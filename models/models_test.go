package models

import (
	"strings"
	"testing"

	"gallery/config"
	"gallery/db"
	"gallery/storage"
)

// setupTestDB points db.Instance at a fresh in-memory SQLite database and the
// upload root at a per-test temp dir.
func setupTestDB(t *testing.T) {
	t.Helper()
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db.Init()
	Init()
	config.UPLOAD_DIR = t.TempDir()
	storage.Init()
}
