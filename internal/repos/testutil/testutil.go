package testutil

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/daily-checklist-backend/internal/logger"
	"github.com/yungbote/daily-checklist-backend/internal/types"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a fresh sqlite database under the test's temp dir, migrated and
// with foreign keys on. Each test gets its own file so cascade deletes and
// concurrent writers behave exactly as in production.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "checklist_test.db")
	dsn := fmt.Sprintf("file:%s?_fk=1&_busy_timeout=5000", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&types.DailyTask{},
		&types.TaskInstance{},
	); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}
