package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daily-checklist-backend/internal/logger"
	"github.com/yungbote/daily-checklist-backend/internal/platform/apierr"
	"github.com/yungbote/daily-checklist-backend/internal/repos"
	"github.com/yungbote/daily-checklist-backend/internal/types"
)

// ChecklistService materializes the checklist for a date: after
// EnsureForDate(d) returns, exactly one instance exists for every template
// that existed at call time, and the joined view is returned in a stable
// order. Safe to call concurrently for the same date; the store's unique
// index on (daily_task_id, date) arbitrates races, not this code.
type ChecklistService interface {
	EnsureForDate(ctx context.Context, date string) ([]*types.ChecklistItem, error)
}

type checklistService struct {
	db           *gorm.DB
	log          *logger.Logger
	taskRepo     repos.DailyTaskRepo
	instanceRepo repos.TaskInstanceRepo
}

func NewChecklistService(db *gorm.DB, log *logger.Logger, taskRepo repos.DailyTaskRepo, instanceRepo repos.TaskInstanceRepo) ChecklistService {
	serviceLog := log.With("service", "ChecklistService")
	return &checklistService{
		db:           db,
		log:          serviceLog,
		taskRepo:     taskRepo,
		instanceRepo: instanceRepo,
	}
}

func (cs *checklistService) EnsureForDate(ctx context.Context, date string) ([]*types.ChecklistItem, error) {
	tasks, err := cs.taskRepo.GetAll(ctx, nil)
	if err != nil {
		cs.log.Error("Failed to load daily tasks", "date", date, "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("load daily tasks: %w", err))
	}
	if len(tasks) == 0 {
		return []*types.ChecklistItem{}, nil
	}

	count, err := cs.instanceRepo.CountByDate(ctx, nil, date)
	if err != nil {
		cs.log.Error("Failed to count task instances", "date", date, "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("count task instances: %w", err))
	}
	if count == 0 {
		if err := cs.materialize(ctx, tasks, date); err != nil {
			return nil, err
		}
	}

	items, err := cs.instanceRepo.GetJoinedByDate(ctx, nil, date)
	if err != nil {
		cs.log.Error("Failed to fetch checklist", "date", date, "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("fetch checklist: %w", err))
	}
	return items, nil
}

// materialize inserts one instance per template, each as its own statement.
// Deliberately not wrapped in a transaction: a duplicate rejection from a
// concurrent materializer must only discard that single row, and on postgres
// a constraint error would poison an enclosing transaction. The count check
// in EnsureForDate is a fast path only; the unique index is what makes
// losing inserts harmless.
func (cs *checklistService) materialize(ctx context.Context, tasks []*types.DailyTask, date string) error {
	for _, task := range tasks {
		instance := &types.TaskInstance{
			ID:          uuid.New(),
			DailyTaskID: task.ID,
			Date:        date,
		}
		if err := cs.instanceRepo.Insert(ctx, nil, instance); err != nil {
			if repos.IsUniqueViolation(err) {
				cs.log.Debug("Instance already materialized by a concurrent request", "task_id", task.ID, "date", date)
				continue
			}
			cs.log.Error("Failed to materialize task instance", "task_id", task.ID, "date", date, "error", err)
			return apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("materialize instance for task %s: %w", task.ID, err))
		}
	}
	return nil
}
