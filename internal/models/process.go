package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Process represents a legal matter tracked by a lawyer. The process_key is
// the human-facing stable identifier and the public share handle; lawyer_id
// scopes every non-public read and write.
type Process struct {
	ID          string  `gorm:"type:char(36);primaryKey" json:"id"`
	ProcessKey  string  `gorm:"size:32;uniqueIndex;not null" json:"process_key"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	ProcessType string  `gorm:"size:32;not null;index:idx_processes_lawyer_type,priority:2" json:"process_type"`
	Status      string  `gorm:"size:16;not null;default:active" json:"status"`
	LawyerID    string  `gorm:"type:char(36);not null;index:idx_processes_lawyer_type,priority:1;index:idx_processes_lawyer_created,priority:1" json:"lawyer_id"`
	ClientID    *string `gorm:"type:char(36)" json:"client_id"`
	ClientName  *string `gorm:"size:255" json:"client_name"`
	ClientEmail *string `gorm:"size:255" json:"client_email"`
	ClientPhone *string `gorm:"size:64" json:"client_phone"`
	Court       *string `gorm:"size:255" json:"court"`
	CaseNumber  *string `gorm:"size:64" json:"case_number"`
	Judge       *string `gorm:"size:255" json:"judge"`
	FilingDate  *string `gorm:"size:32" json:"filing_date"`
	CreatedAt   time.Time `gorm:"index:idx_processes_lawyer_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key
func (p *Process) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// TableName overrides the table name for Process
func (Process) TableName() string {
	return "processes"
}

// PublicProcess is the reduced projection exposed on the unauthenticated share
// link. No client contact information, no lawyer id.
type PublicProcess struct {
	ProcessKey  string    `json:"process_key"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	ProcessType string    `json:"process_type"`
	Court       *string   `json:"court"`
	CaseNumber  *string   `json:"case_number"`
	FilingDate  *string   `json:"filing_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Public returns the reduced share-link projection of the process.
func (p *Process) Public() PublicProcess {
	return PublicProcess{
		ProcessKey:  p.ProcessKey,
		Title:       p.Title,
		Status:      p.Status,
		ProcessType: p.ProcessType,
		Court:       p.Court,
		CaseNumber:  p.CaseNumber,
		FilingDate:  p.FilingDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
