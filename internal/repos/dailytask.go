package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/daily-checklist-backend/internal/logger"
	"github.com/yungbote/daily-checklist-backend/internal/types"
)

type DailyTaskRepo interface {
	Create(ctx context.Context, tx *gorm.DB, task *types.DailyTask) error
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.DailyTask, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DailyTask, error)
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, title, description string) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)
}

type dailyTaskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDailyTaskRepo(db *gorm.DB, baseLog *logger.Logger) DailyTaskRepo {
	repoLog := baseLog.With("repo", "DailyTaskRepo")
	return &dailyTaskRepo{db: db, log: repoLog}
}

func (dr *dailyTaskRepo) Create(ctx context.Context, tx *gorm.DB, task *types.DailyTask) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	if task == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(task).Error
}

func (dr *dailyTaskRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.DailyTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var results []*types.DailyTask
	if err := transaction.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *dailyTaskRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DailyTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	var result types.DailyTask
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (dr *dailyTaskRepo) Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, title, description string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.DailyTask{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       title,
			"description": description,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (dr *dailyTaskRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}

	res := transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.DailyTask{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
