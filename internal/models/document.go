package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProcessDocument is the metadata row for an uploaded file. The blob itself
// lives in the object store under FilePath, namespaced by process_key.
type ProcessDocument struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	ProcessID  string    `gorm:"type:char(36);not null;index" json:"process_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	FilePath   string    `gorm:"size:512;not null" json:"file_path"`
	FileType   string    `gorm:"size:128;not null" json:"file_type"`
	FileSize   int64     `gorm:"not null" json:"file_size"`
	UploadedBy string    `gorm:"type:char(36);not null" json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key
func (d *ProcessDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for ProcessDocument
func (ProcessDocument) TableName() string {
	return "process_documents"
}
