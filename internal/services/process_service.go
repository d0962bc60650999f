package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/hints"

	"github.com/legalbridge/legalbridge/internal/catalog"
	"github.com/legalbridge/legalbridge/internal/models"
)

// processKeyPattern is the PROC-<year>-<5 digits> shape of a process key.
var processKeyPattern = regexp.MustCompile(`^PROC-\d{4}-\d{5}$`)

// ProcessInput carries the client-supplied fields for creating or updating a
// process. ProcessKey is honored on create when well-formed and generated
// otherwise; LawyerID and timestamps are never client-supplied.
type ProcessInput struct {
	ProcessKey  string  `json:"process_key"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ProcessType string  `json:"process_type"`
	Status      string  `json:"status"`
	ClientID    *string `json:"client_id"`
	ClientName  *string `json:"client_name"`
	ClientEmail *string `json:"client_email"`
	ClientPhone *string `json:"client_phone"`
	Court       *string `json:"court"`
	CaseNumber  *string `json:"case_number"`
	Judge       *string `json:"judge"`
	FilingDate  *string `json:"filing_date"`
}

func (in *ProcessInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !catalog.ValidProcessType(catalog.ProcessType(in.ProcessType)) {
		return fmt.Errorf("%w: unknown process type %q", ErrValidation, in.ProcessType)
	}
	if in.Status != "" && !catalog.ValidStatus(catalog.Status(in.Status)) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	if in.ProcessKey != "" && !processKeyPattern.MatchString(in.ProcessKey) {
		return fmt.Errorf("%w: malformed process key %q", ErrValidation, in.ProcessKey)
	}
	return nil
}

// GenerateProcessKey builds a PROC-<year>-<5 digits> key. Uniqueness is not
// guaranteed here; the unique index on process_key is the arbiter and a
// collision surfaces as ErrConflict at insert time.
func GenerateProcessKey(now time.Time) string {
	return fmt.Sprintf("PROC-%d-%05d", now.Year(), 10000+rand.IntN(90000))
}

// ListProcesses returns all processes owned by the lawyer, newest first.
func ListProcesses(db *gorm.DB, lawyerID string) ([]models.Process, error) {
	var processes []models.Process

	q := db.Where("lawyer_id = ?", lawyerID)
	if db.Dialector.Name() == "mysql" {
		q = q.Clauses(hints.UseIndex("idx_processes_lawyer_created"))
	}
	if err := q.Order("created_at DESC").Find(&processes).Error; err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	return processes, nil
}

// CreateProcess validates the input, generates a process key and inserts the
// row. A key collision is returned as ErrConflict for the client to retry.
func CreateProcess(db *gorm.DB, lawyerID string, in *ProcessInput) (*models.Process, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = string(catalog.StatusActive)
	}

	processKey := in.ProcessKey
	if processKey == "" {
		processKey = GenerateProcessKey(time.Now())
	}

	process := models.Process{
		ProcessKey:  processKey,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		ProcessType: in.ProcessType,
		Status:      status,
		LawyerID:    lawyerID,
		ClientID:    in.ClientID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Court:       in.Court,
		CaseNumber:  in.CaseNumber,
		Judge:       in.Judge,
		FilingDate:  in.FilingDate,
	}

	if err := db.Create(&process).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: process key %s already exists", ErrConflict, process.ProcessKey)
		}
		return nil, fmt.Errorf("failed to create process: %w", err)
	}

	return &process, nil
}

// GetProcessByKey loads one process by key, scoped to the owning lawyer.
func GetProcessByKey(db *gorm.DB, processKey, lawyerID string) (*models.Process, error) {
	var process models.Process

	err := db.Where("process_key = ? AND lawyer_id = ?", processKey, lawyerID).First(&process).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load process: %w", err)
	}

	return &process, nil
}

// UpdateProcess applies the input to an owned process. The process key and
// owner are immutable.
func UpdateProcess(db *gorm.DB, processKey, lawyerID string, in *ProcessInput) (*models.Process, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	process, err := GetProcessByKey(db, processKey, lawyerID)
	if err != nil {
		return nil, err
	}

	process.Title = strings.TrimSpace(in.Title)
	process.Description = in.Description
	process.ProcessType = in.ProcessType
	if in.Status != "" {
		process.Status = in.Status
	}
	process.ClientID = in.ClientID
	process.ClientName = in.ClientName
	process.ClientEmail = in.ClientEmail
	process.ClientPhone = in.ClientPhone
	process.Court = in.Court
	process.CaseNumber = in.CaseNumber
	process.Judge = in.Judge
	process.FilingDate = in.FilingDate

	if err := db.Save(process).Error; err != nil {
		return nil, fmt.Errorf("failed to update process: %w", err)
	}

	return process, nil
}

// DeleteProcess removes an owned process together with its questionnaire and
// document rows. Blob cleanup is the caller's concern.
func DeleteProcess(db *gorm.DB, processKey, lawyerID string) error {
	process, err := GetProcessByKey(db, processKey, lawyerID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("process_id = ?", process.ID).Delete(&models.ProcessQuestionnaire{}).Error; err != nil {
			return fmt.Errorf("failed to delete questionnaire: %w", err)
		}
		if err := tx.Where("process_id = ?", process.ID).Delete(&models.ProcessDocument{}).Error; err != nil {
			return fmt.Errorf("failed to delete documents: %w", err)
		}
		if err := tx.Delete(process).Error; err != nil {
			return fmt.Errorf("failed to delete process: %w", err)
		}
		return nil
	})
}

// PublicProcessByKey loads the reduced share-link projection for a process.
// No ownership check: the key itself is the capability.
func PublicProcessByKey(db *gorm.DB, processKey string) (*models.PublicProcess, error) {
	var process models.Process

	err := db.Where("process_key = ?", processKey).First(&process).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load process: %w", err)
	}

	pub := process.Public()
	return &pub, nil
}

// ProcessSummary is the dashboard aggregate for one lawyer.
type ProcessSummary struct {
	Total     int64            `json:"total"`
	Active    int64            `json:"active"`
	PreFiling int64            `json:"pre_filing"`
	Closed    int64            `json:"closed"`
	ByType    map[string]int64 `json:"by_type"`
	ByStatus  map[string]int64 `json:"by_status"`
}

// GetProcessSummary computes the dashboard buckets for a lawyer. "Active"
// counts both active and pending processes; archived processes appear in
// the total and the by_status breakdown but in no named bucket.
func GetProcessSummary(db *gorm.DB, lawyerID string) (*ProcessSummary, error) {
	type row struct {
		ProcessType string
		Status      string
		N           int64
	}
	var rows []row

	err := db.Model(&models.Process{}).
		Select("process_type, status, COUNT(*) AS n").
		Where("lawyer_id = ?", lawyerID).
		Group("process_type").Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to summarize processes: %w", err)
	}

	summary := ProcessSummary{
		ByType:   make(map[string]int64),
		ByStatus: make(map[string]int64),
	}
	for _, r := range rows {
		summary.Total += r.N
		summary.ByType[r.ProcessType] += r.N
		summary.ByStatus[r.Status] += r.N

		switch catalog.Status(r.Status) {
		case catalog.StatusActive, catalog.StatusPending:
			summary.Active += r.N
		case catalog.StatusPreFiling:
			summary.PreFiling += r.N
		case catalog.StatusClosed:
			summary.Closed += r.N
		}
	}

	return &summary, nil
}
