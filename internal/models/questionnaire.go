package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessQuestionnaire holds the saved answer object for one process. The
// shape of Data is determined by ProcessType; it is not validated against any
// builder-authored template.
type ProcessQuestionnaire struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	ProcessID   string    `gorm:"type:char(36);not null;uniqueIndex" json:"process_id"`
	ProcessType string    `gorm:"size:32;not null" json:"process_type"`
	Data        JSON      `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key
func (q *ProcessQuestionnaire) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for ProcessQuestionnaire
func (ProcessQuestionnaire) TableName() string {
	return "process_questionnaires"
}

// QuestionnaireTemplate is a lawyer-authored ordered list of field schemas for
// one process type. At most one template exists per process type. Fields is
// the serialized []questionnaire.Field sequence; render order is the slice
// order.
type QuestionnaireTemplate struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	ProcessType string    `gorm:"size:32;not null;uniqueIndex" json:"process_type"`
	Fields      JSON      `json:"fields"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key
func (t *QuestionnaireTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for QuestionnaireTemplate
func (QuestionnaireTemplate) TableName() string {
	return "questionnaire_templates"
}
