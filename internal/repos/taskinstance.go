package repos

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daily-checklist-backend/internal/logger"
	"github.com/yungbote/daily-checklist-backend/internal/types"
)

type TaskInstanceRepo interface {
	Insert(ctx context.Context, tx *gorm.DB, instance *types.TaskInstance) error
	CountByDate(ctx context.Context, tx *gorm.DB, date string) (int64, error)
	GetByDate(ctx context.Context, tx *gorm.DB, date string) ([]*types.TaskInstance, error)
	SetCompleted(ctx context.Context, tx *gorm.DB, id uuid.UUID, completed bool) (int64, error)
	GetJoinedByDate(ctx context.Context, tx *gorm.DB, date string) ([]*types.ChecklistItem, error)
	GetJoinedByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ChecklistItem, error)
}

type taskInstanceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskInstanceRepo(db *gorm.DB, baseLog *logger.Logger) TaskInstanceRepo {
	repoLog := baseLog.With("repo", "TaskInstanceRepo")
	return &taskInstanceRepo{db: db, log: repoLog}
}

// IsUniqueViolation reports whether err is the store rejecting a duplicate
// (daily_task_id, date) pair. gorm translates driver errors when
// TranslateError is on; the string checks cover drivers that predate the
// translation.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

func (tr *taskInstanceRepo) Insert(ctx context.Context, tx *gorm.DB, instance *types.TaskInstance) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if instance == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(instance).Error
}

func (tr *taskInstanceRepo) CountByDate(ctx context.Context, tx *gorm.DB, date string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.TaskInstance{}).
		Where("date = ?", date).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (tr *taskInstanceRepo) GetByDate(ctx context.Context, tx *gorm.DB, date string) ([]*types.TaskInstance, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TaskInstance
	if err := transaction.WithContext(ctx).
		Where("date = ?", date).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *taskInstanceRepo) SetCompleted(ctx context.Context, tx *gorm.DB, id uuid.UUID, completed bool) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.TaskInstance{}).
		Where("id = ?", id).
		Update("completed", completed)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (tr *taskInstanceRepo) GetJoinedByDate(ctx context.Context, tx *gorm.DB, date string) ([]*types.ChecklistItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.ChecklistItem
	if err := transaction.WithContext(ctx).
		Table("task_instances AS ti").
		Select("ti.id, ti.daily_task_id, ti.date, ti.completed, ti.created_at, dt.title, dt.description").
		Joins("INNER JOIN daily_tasks dt ON dt.id = ti.daily_task_id").
		Where("ti.date = ?", date).
		Order("ti.created_at ASC, ti.id ASC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	if results == nil {
		results = []*types.ChecklistItem{}
	}
	return results, nil
}

func (tr *taskInstanceRepo) GetJoinedByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ChecklistItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.ChecklistItem
	if err := transaction.WithContext(ctx).
		Table("task_instances AS ti").
		Select("ti.id, ti.daily_task_id, ti.date, ti.completed, ti.created_at, dt.title, dt.description").
		Joins("INNER JOIN daily_tasks dt ON dt.id = ti.daily_task_id").
		Where("ti.id = ?", id).
		Limit(1).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}
