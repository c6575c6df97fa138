package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AnswerFormatSingle   = "SINGLE"
	AnswerFormatMultiple = "MULTIPLE"
)

type QuestionnaireQuestion struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title            string         `gorm:"size:450;not null;column:title" json:"title"`
	AnswerFormat     string         `gorm:"size:20;not null;column:answer_format" json:"answer_format"`
	AvailableAnswers datatypes.JSON `gorm:"column:available_answers" json:"available_answers"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
}

func (QuestionnaireQuestion) TableName() string {
	return "questionnaire_question"
}
