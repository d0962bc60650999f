package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/legalbridge/legalbridge/internal/catalog"
	"github.com/legalbridge/legalbridge/internal/models"
	"github.com/legalbridge/legalbridge/internal/questionnaire"
)

func templateFromModel(m *models.QuestionnaireTemplate) (*questionnaire.Template, error) {
	var fields []questionnaire.Field
	if len(m.Fields.JSON) > 0 {
		if err := json.Unmarshal(m.Fields.JSON, &fields); err != nil {
			return nil, fmt.Errorf("failed to decode template fields: %w", err)
		}
	}
	if fields == nil {
		fields = []questionnaire.Field{}
	}

	return &questionnaire.Template{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ProcessType: catalog.ProcessType(m.ProcessType),
		Fields:      fields,
	}, nil
}

// TemplateByProcessType loads the persisted template for a process type, or
// ErrNotFound when none exists yet. Callers fall back to a fresh
// questionnaire.NewTemplate seed in that case.
func TemplateByProcessType(db *gorm.DB, pt catalog.ProcessType) (*questionnaire.Template, error) {
	if !catalog.ValidProcessType(pt) {
		return nil, fmt.Errorf("%w: unknown process type %q", ErrValidation, pt)
	}

	var m models.QuestionnaireTemplate
	err := db.Where("process_type = ?", string(pt)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	return templateFromModel(&m)
}

// SaveTemplate validates and persists a template. A template carrying a prior
// persisted ID updates that row; one without an ID inserts a new row.
func SaveTemplate(db *gorm.DB, t *questionnaire.Template) (*questionnaire.Template, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	raw, err := json.Marshal(t.Fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode template fields: %w", err)
	}
	fields := models.JSON{JSON: datatypes.JSON(raw)}

	if t.ID == "" {
		m := models.QuestionnaireTemplate{
			Title:       t.Title,
			Description: t.Description,
			ProcessType: string(t.ProcessType),
			Fields:      fields,
		}
		if err := db.Create(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("%w: template for %s already exists", ErrConflict, t.ProcessType)
			}
			return nil, fmt.Errorf("failed to create template: %w", err)
		}
		return templateFromModel(&m)
	}

	var m models.QuestionnaireTemplate
	if err := db.Where("id = ?", t.ID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	m.Title = t.Title
	m.Description = t.Description
	m.ProcessType = string(t.ProcessType)
	m.Fields = fields

	if err := db.Save(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: template for %s already exists", ErrConflict, t.ProcessType)
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return templateFromModel(&m)
}
