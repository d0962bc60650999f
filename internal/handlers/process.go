package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/legalbridge/legalbridge/internal/services"
	"github.com/legalbridge/legalbridge/internal/utils"
)

// ProcessHandler handles process CRUD and dashboard routes
type ProcessHandler struct {
	DB *gorm.DB
}

// ListProcesses handles GET /api/processes
// @Summary List processes
// @Description List all processes owned by the authenticated lawyer, newest first
// @Tags Processes
// @Accept json
// @Produce json
// @Success 200 {array} models.Process
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes [get]
func (h *ProcessHandler) ListProcesses(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	processes, err := services.ListProcesses(h.DB, userID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "listProcesses")
	}

	return c.Status(fiber.StatusOK).JSON(processes)
}

// CreateProcess handles POST /api/processes
// @Summary Create a process
// @Description Create a new process; the process key is generated server-side
// @Tags Processes
// @Accept json
// @Produce json
// @Param process body services.ProcessInput true "Process fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes [post]
func (h *ProcessHandler) CreateProcess(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	var input services.ProcessInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Invalid request body: %v", err), fiber.StatusBadRequest, "createProcess")
	}

	process, err := services.CreateProcess(h.DB, userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "createProcess")
		case errors.Is(err, services.ErrConflict):
			return utils.ConflictResponse(c, err.Error())
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "createProcess")
	}

	return utils.MutationSuccessResponse(c, process)
}

// GetProcessSummary handles GET /api/processes/summary
// @Summary Dashboard summary
// @Description Status buckets and per-category counts for the authenticated lawyer
// @Tags Processes
// @Accept json
// @Produce json
// @Success 200 {object} services.ProcessSummary
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes/summary [get]
func (h *ProcessHandler) GetProcessSummary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	summary, err := services.GetProcessSummary(h.DB, userID)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getProcessSummary")
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

// GetProcess handles GET /api/processes/:processKey
// @Summary Get a process
// @Description Get one owned process by its process key
// @Tags Processes
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Success 200 {object} models.Process
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey} [get]
func (h *ProcessHandler) GetProcess(c *fiber.Ctx) error {
	process, _, err := loadOwnedProcess(c, h.DB)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	return c.Status(fiber.StatusOK).JSON(process)
}

// UpdateProcess handles PUT /api/processes/:processKey
// @Summary Update a process
// @Description Update an owned process; process key and owner are immutable
// @Tags Processes
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Param process body services.ProcessInput true "Process fields"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey} [put]
func (h *ProcessHandler) UpdateProcess(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	var input services.ProcessInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fmt.Sprintf("Invalid request body: %v", err), fiber.StatusBadRequest, "updateProcess")
	}

	process, err := services.UpdateProcess(h.DB, c.Params("processKey"), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		case errors.Is(err, services.ErrValidation):
			return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "updateProcess")
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "updateProcess")
	}

	return utils.MutationSuccessResponse(c, process)
}

// DeleteProcess handles DELETE /api/processes/:processKey
// @Summary Delete a process
// @Description Delete an owned process with its questionnaire and document rows
// @Tags Processes
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /processes/{processKey} [delete]
func (h *ProcessHandler) DeleteProcess(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusForbidden, "processes.authorization.user")
	}

	if err := services.DeleteProcess(h.DB, c.Params("processKey"), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "deleteProcess")
	}

	return utils.MutationSuccessResponse(c, nil)
}
