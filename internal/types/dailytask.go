package types

import (
	"time"

	"github.com/google/uuid"
)

// DailyTask is a reusable template for a recurring task. Instances are
// materialized from it per calendar date; the template itself carries no
// completion state.
type DailyTask struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (DailyTask) TableName() string { return "daily_tasks" }
