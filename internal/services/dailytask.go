package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daily-checklist-backend/internal/logger"
	"github.com/yungbote/daily-checklist-backend/internal/platform/apierr"
	"github.com/yungbote/daily-checklist-backend/internal/repos"
	"github.com/yungbote/daily-checklist-backend/internal/types"
)

// DailyTaskService is plain CRUD over task templates. Deleting a template
// cascades at the store level to every instance materialized from it;
// concurrent edits are last-write-wins.
type DailyTaskService interface {
	List(ctx context.Context) ([]*types.DailyTask, error)
	Create(ctx context.Context, title, description string) (*types.DailyTask, error)
	Update(ctx context.Context, id uuid.UUID, title, description string) (*types.DailyTask, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type dailyTaskService struct {
	db       *gorm.DB
	log      *logger.Logger
	taskRepo repos.DailyTaskRepo
}

func NewDailyTaskService(db *gorm.DB, log *logger.Logger, taskRepo repos.DailyTaskRepo) DailyTaskService {
	serviceLog := log.With("service", "DailyTaskService")
	return &dailyTaskService{db: db, log: serviceLog, taskRepo: taskRepo}
}

func (ds *dailyTaskService) List(ctx context.Context) ([]*types.DailyTask, error) {
	tasks, err := ds.taskRepo.GetAll(ctx, nil)
	if err != nil {
		ds.log.Error("Failed to list daily tasks", "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("list daily tasks: %w", err))
	}
	return tasks, nil
}

func (ds *dailyTaskService) Create(ctx context.Context, title, description string) (*types.DailyTask, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apierr.New(http.StatusBadRequest, "title_required", fmt.Errorf("title is required"))
	}

	task := &types.DailyTask{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
	}
	if err := ds.taskRepo.Create(ctx, nil, task); err != nil {
		ds.log.Error("Failed to create daily task", "error", err)
		return nil, apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("create daily task: %w", err))
	}
	return task, nil
}

func (ds *dailyTaskService) Update(ctx context.Context, id uuid.UUID, title, description string) (*types.DailyTask, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apierr.New(http.StatusBadRequest, "title_required", fmt.Errorf("title is required"))
	}

	var updated *types.DailyTask
	err := ds.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := ds.taskRepo.Update(ctx, tx, id, title, description)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("update daily task: %w", err))
		}
		if affected == 0 {
			return apierr.New(http.StatusNotFound, "daily_task_not_found", fmt.Errorf("daily task %s does not exist", id))
		}
		task, err := ds.taskRepo.GetByID(ctx, tx, id)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("reload daily task: %w", err))
		}
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (ds *dailyTaskService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := ds.taskRepo.Delete(ctx, nil, id)
	if err != nil {
		ds.log.Error("Failed to delete daily task", "task_id", id, "error", err)
		return apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("delete daily task: %w", err))
	}
	if affected == 0 {
		return apierr.New(http.StatusNotFound, "daily_task_not_found", fmt.Errorf("daily task %s does not exist", id))
	}
	ds.log.Info("Deleted daily task", "task_id", id)
	return nil
}
