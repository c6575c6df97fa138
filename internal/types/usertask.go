package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusNotStarted = "NOT_STARTED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusPassed     = "PASSED"
)

const (
	ActionStart    = "start"
	ActionComplete = "complete"
	ActionPass     = "pass"
)

// TerminalStatus reports whether no further lifecycle action is legal.
func TerminalStatus(status string) bool {
	return status == StatusCompleted || status == StatusPassed
}

// UserTask binds one user to one task and carries the assignment's own
// lifecycle state. At most one row exists per (user, task) pair. EarnedMarks
// is written exactly once, on the transition into COMPLETED, and equals the
// task's marks at that moment.
type UserTask struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_task,unique" json:"user_id"`
	User        *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	TaskID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_task,unique" json:"task_id"`
	Task        *Task      `gorm:"foreignKey:TaskID;references:ID" json:"task_details,omitempty"`
	Status      string     `gorm:"size:15;not null;default:'NOT_STARTED';column:status" json:"status"`
	Rating      *int       `gorm:"column:rating" json:"rating,omitempty"`
	StartedAt   *time.Time `gorm:"column:started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	EarnedMarks *int       `gorm:"column:earned_marks" json:"earned_marks,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (UserTask) TableName() string {
	return "user_task"
}
