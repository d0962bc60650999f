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

// TemplateHandler handles questionnaire template routes
type TemplateHandler struct {
	DB *gorm.DB
}

// GetTemplate handles GET /api/templates/:processType
// @Summary Get a questionnaire template
// @Description Persisted builder template for a category; 404 when none exists
// @Tags Templates
// @Accept json
// @Produce json
// @Param processType path string true "Process type"
// @Success 200 {object} questionnaire.Template
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /templates/{processType} [get]
func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	pt := catalog.ProcessType(c.Params("processType"))

	template, err := services.TemplateByProcessType(h.DB, pt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, fmt.Sprintf("No template for process type '%s'", pt))
		case errors.Is(err, services.ErrValidation):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "getTemplate")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getTemplate")
	}

	return c.Status(fiber.StatusOK).JSON(template)
}

// GetFieldTypes handles GET /api/field-types
// @Summary Field type vocabulary
// @Description Field types available in the template builder, with display labels
// @Tags Templates
// @Produce json
// @Success 200 {array} questionnaire.SelectOption
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /field-types [get]
func (h *TemplateHandler) GetFieldTypes(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(questionnaire.FieldTypes())
}

// SaveTemplate handles POST /api/templates/:processType
// @Summary Save a questionnaire template
// @Description Insert when the template has no id, update the row otherwise
// @Tags Templates
// @Accept json
// @Produce json
// @Param processType path string true "Process type"
// @Param template body questionnaire.Template true "Template"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /templates/{processType} [post]
func (h *TemplateHandler) SaveTemplate(c *fiber.Ctx) error {
	var template questionnaire.Template
	if err := c.BodyParser(&template); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Invalid request body: %v", err), fiber.StatusBadRequest, "saveTemplate")
	}

	// The path parameter is authoritative for the category.
	template.ProcessType = catalog.ProcessType(c.Params("processType"))

	saved, err := services.SaveTemplate(h.DB, &template)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "saveTemplate")
		case errors.Is(err, services.ErrConflict):
			return utils.ConflictResponse(c, err.Error())
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, fmt.Sprintf("Template '%s' not found", template.ID))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "saveTemplate")
	}

	return utils.MutationSuccessResponse(c, saved)
}
