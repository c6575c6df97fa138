package types

import (
	"time"

	"github.com/google/uuid"
)

// AIProfile stores the addiction context injected into recommendation and
// therapist prompts.
type AIProfile struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                  uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	User                    *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	AddictionType           string    `gorm:"size:30;not null;column:addiction_type" json:"addiction_type"`
	AddictionDurationMonths int       `gorm:"not null;column:addiction_duration_months" json:"addiction_duration_months"`
	CreatedAt               time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt               time.Time `gorm:"not null" json:"updated_at"`
}

func (AIProfile) TableName() string {
	return "ai_profile"
}
