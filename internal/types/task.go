package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

func ValidDifficulty(difficulty string) bool {
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Task is a catalog entry describing one recoverable task. Rows are immutable
// once created; assignments reference them but never change them.
type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	Difficulty  string    `gorm:"size:10;not null;column:difficulty" json:"difficulty"`
	Marks       int       `gorm:"not null;default:1;column:marks" json:"marks"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

func (Task) TableName() string {
	return "task"
}
