package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/legalbridge/legalbridge/internal/catalog"
	"github.com/legalbridge/legalbridge/internal/services"
	"github.com/legalbridge/legalbridge/internal/utils"
)

// PublicHandler handles the unauthenticated share link route
type PublicHandler struct {
	DB *gorm.DB
}

// GetPublicProcess handles GET /api/public/processes/:processKey
// @Summary Public share link view
// @Description Reduced process projection for the public share link, no auth
// @Tags Public
// @Accept json
// @Produce json
// @Param processKey path string true "Process key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /public/processes/{processKey} [get]
func (h *PublicHandler) GetPublicProcess(c *fiber.Ctx) error {
	pub, err := services.PublicProcessByKey(h.DB, c.Params("processKey"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Process '%s' not found", c.Params("processKey")))
		}
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "getPublicProcess")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"process":            pub,
		"process_type_label": catalog.Label(catalog.ProcessType(pub.ProcessType)),
		"status_label":       catalog.StatusLabel(catalog.Status(pub.Status)),
	})
}
