package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/legalbridge/legalbridge/internal/catalog"
	"github.com/legalbridge/legalbridge/internal/questionnaire"
	"github.com/legalbridge/legalbridge/internal/services"
	"github.com/legalbridge/legalbridge/internal/utils"
)

// QuestionnaireHandler handles questionnaire response routes
type QuestionnaireHandler struct {
	DB *gorm.DB
}

// questionnairePayload is the wire shape for questionnaire reads.
type questionnairePayload struct {
	ProcessKey  string                 `json:"process_key"`
	ProcessType catalog.ProcessType    `json:"process_type"`
	HasForm     bool                   `json:"has_form"`
	Exists      bool                   `json:"exists"`
	Data        questionnaire.Response `json:"data"`
}

// GetQuestionnaire handles GET /api/processes/:processKey/questionnaire
// @Summary Get questionnaire answers
// @Description Stored answers for the process, or category defaults with exists=false
// @Tags Questionnaires
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey}/questionnaire [get]
func (h *QuestionnaireHandler) GetQuestionnaire(c *fiber.Ctx) error {
	process, _, err := loadOwnedProcess(c, h.DB)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	answers, err := services.QuestionnaireByProcess(h.DB, process)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getQuestionnaire")
	}

	return c.Status(fiber.StatusOK).JSON(questionnairePayload{
		ProcessKey:  process.ProcessKey,
		ProcessType: answers.ProcessType,
		HasForm:     questionnaire.HasForm(answers.ProcessType),
		Exists:      answers.Exists,
		Data:        answers.Data,
	})
}

// SaveQuestionnaire handles POST /api/processes/:processKey/questionnaire
// @Summary Save questionnaire answers
// @Description Upsert the answer object for the process, decoded per category
// @Tags Questionnaires
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Param data body map[string]interface{} true "Answer object"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey}/questionnaire [post]
func (h *QuestionnaireHandler) SaveQuestionnaire(c *fiber.Ctx) error {
	process, _, err := loadOwnedProcess(c, h.DB)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	data, err := questionnaire.DecodeResponse(catalog.ProcessType(process.ProcessType), c.Body())
	if err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Invalid request body: %v", err), fiber.StatusBadRequest, "saveQuestionnaire")
	}

	saved, err := services.SaveQuestionnaire(h.DB, process, data)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "saveQuestionnaire")
	}

	return utils.MutationSuccessResponse(c, fiber.Map{
		"id":           saved.ID,
		"process_type": saved.ProcessType,
	})
}
