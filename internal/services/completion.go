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

// CompletionService flips the completed flag on a single instance and
// returns the updated joined view. No cascading effects.
type CompletionService interface {
	SetCompletion(ctx context.Context, id uuid.UUID, completed bool) (*types.ChecklistItem, error)
}

type completionService struct {
	db           *gorm.DB
	log          *logger.Logger
	instanceRepo repos.TaskInstanceRepo
}

func NewCompletionService(db *gorm.DB, log *logger.Logger, instanceRepo repos.TaskInstanceRepo) CompletionService {
	serviceLog := log.With("service", "CompletionService")
	return &completionService{db: db, log: serviceLog, instanceRepo: instanceRepo}
}

func (cs *completionService) SetCompletion(ctx context.Context, id uuid.UUID, completed bool) (*types.ChecklistItem, error) {
	var item *types.ChecklistItem
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		affected, err := cs.instanceRepo.SetCompleted(ctx, tx, id, completed)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("set completion: %w", err))
		}
		if affected == 0 {
			return apierr.New(http.StatusNotFound, "task_instance_not_found", fmt.Errorf("task instance %s does not exist", id))
		}
		joined, err := cs.instanceRepo.GetJoinedByID(ctx, tx, id)
		if err != nil {
			return apierr.New(http.StatusInternalServerError, "storage_error", fmt.Errorf("reload task instance: %w", err))
		}
		if joined == nil {
			return apierr.New(http.StatusNotFound, "task_instance_not_found", fmt.Errorf("task instance %s does not exist", id))
		}
		item = joined
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
