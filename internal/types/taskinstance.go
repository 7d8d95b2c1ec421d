package types

import (
	"time"

	"github.com/google/uuid"
)

// TaskInstance is one concrete, completable occurrence of a DailyTask on a
// calendar date. Date is a plain YYYY-MM-DD string, no time component.
// The composite unique index on (daily_task_id, date) is the invariant the
// whole materializer leans on; it lives in the store, not in app logic.
type TaskInstance struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DailyTaskID uuid.UUID  `gorm:"type:uuid;not null;index:idx_task_instance_task_date,unique" json:"daily_task_id"`
	DailyTask   *DailyTask `gorm:"constraint:OnDelete:CASCADE;foreignKey:DailyTaskID;references:ID" json:"daily_task,omitempty"`
	Date        string     `gorm:"not null;index;index:idx_task_instance_task_date,unique" json:"date"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
}

func (TaskInstance) TableName() string { return "task_instances" }

// ChecklistItem is a TaskInstance joined with its owning template's title and
// description. Titles are re-joined at read time, never snapshotted, so
// editing a template changes how past instances display too.
type ChecklistItem struct {
	ID          uuid.UUID `json:"id"`
	DailyTaskID uuid.UUID `json:"daily_task_id"`
	Date        string    `json:"date"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
