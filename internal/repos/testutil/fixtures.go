package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daily-checklist-backend/internal/types"
)

func SeedDailyTask(tb testing.TB, ctx context.Context, db *gorm.DB, title, description string) *types.DailyTask {
	tb.Helper()
	task := &types.DailyTask{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
	}
	if err := db.WithContext(ctx).Create(task).Error; err != nil {
		tb.Fatalf("seed daily task: %v", err)
	}
	return task
}

func SeedTaskInstance(tb testing.TB, ctx context.Context, db *gorm.DB, taskID uuid.UUID, date string) *types.TaskInstance {
	tb.Helper()
	instance := &types.TaskInstance{
		ID:          uuid.New(),
		DailyTaskID: taskID,
		Date:        date,
	}
	if err := db.WithContext(ctx).Create(instance).Error; err != nil {
		tb.Fatalf("seed task instance: %v", err)
	}
	return instance
}
