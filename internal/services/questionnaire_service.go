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

// QuestionnaireAnswers pairs a stored response with the process type it was
// saved under. Exists is false when the caller got category defaults instead
// of a stored row.
type QuestionnaireAnswers struct {
	ProcessType catalog.ProcessType    `json:"process_type"`
	Data        questionnaire.Response `json:"data"`
	Exists      bool                   `json:"exists"`
}

// QuestionnaireByProcess loads the stored answers for a process. When no row
// exists it returns the category default object with Exists=false, which is
// what a form renders on first open.
func QuestionnaireByProcess(db *gorm.DB, process *models.Process) (*QuestionnaireAnswers, error) {
	pt := catalog.ProcessType(process.ProcessType)

	var m models.ProcessQuestionnaire
	err := db.Where("process_id = ?", process.ID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &QuestionnaireAnswers{
				ProcessType: pt,
				Data:        questionnaire.NewResponse(pt),
				Exists:      false,
			}, nil
		}
		return nil, fmt.Errorf("failed to load questionnaire: %w", err)
	}

	// Decode under the type the row was saved with, which may differ from
	// the process's current type if the process was recategorized.
	savedType := catalog.ProcessType(m.ProcessType)
	data, err := questionnaire.DecodeResponse(savedType, m.Data.JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode questionnaire: %w", err)
	}

	return &QuestionnaireAnswers{
		ProcessType: savedType,
		Data:        data,
		Exists:      true,
	}, nil
}

// SaveQuestionnaire upserts the answer object for a process: update the
// existing row if one exists, insert a new one tagged with the process type
// otherwise.
func SaveQuestionnaire(db *gorm.DB, process *models.Process, data questionnaire.Response) (*models.ProcessQuestionnaire, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode questionnaire: %w", err)
	}
	payload := models.JSON{JSON: datatypes.JSON(raw)}

	var m models.ProcessQuestionnaire
	err = db.Where("process_id = ?", process.ID).First(&m).Error
	switch {
	case err == nil:
		m.ProcessType = string(data.ProcessType())
		m.Data = payload
		if err := db.Save(&m).Error; err != nil {
			return nil, fmt.Errorf("failed to update questionnaire: %w", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = models.ProcessQuestionnaire{
			ProcessID:   process.ID,
			ProcessType: string(data.ProcessType()),
			Data:        payload,
		}
		if err := db.Create(&m).Error; err != nil {
			return nil, fmt.Errorf("failed to create questionnaire: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load questionnaire: %w", err)
	}

	return &m, nil
}
