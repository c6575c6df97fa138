package types

import (
	"time"

	"github.com/google/uuid"
)

// UserScore is the per-user aggregate over COMPLETED assignments. It is
// created lazily on first need and updated incrementally inside the same
// transaction as the completing lifecycle transition, so total_marks and
// tasks_completed always match a recomputation from the assignment set.
type UserScore struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User           *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	TotalMarks     int       `gorm:"not null;default:0;column:total_marks" json:"total_marks"`
	TasksCompleted int       `gorm:"not null;default:0;column:tasks_completed" json:"tasks_completed"`
	LastUpdated    time.Time `gorm:"column:last_updated" json:"last_updated"`
}

func (UserScore) TableName() string {
	return "user_score"
}
