package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/legalbridge/legalbridge/internal/models"
	"github.com/legalbridge/legalbridge/internal/services"
)

// getUserID extracts the authenticated lawyer's id from the request context.
func getUserID(c *fiber.Ctx) (string, error) {
	user := c.Locals("user")
	if user == nil {
		return "", fmt.Errorf("user not found in context")
	}

	userMap, ok := user.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid user data format")
	}

	userID, ok := userMap["id"].(string)
	if !ok {
		return "", fmt.Errorf("user ID not found")
	}

	return userID, nil
}

// loadOwnedProcess resolves the :processKey path parameter to a process owned
// by the authenticated lawyer.
func loadOwnedProcess(c *fiber.Ctx, db *gorm.DB) (*models.Process, string, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, "", err
	}

	process, err := services.GetProcessByKey(db, c.Params("processKey"), userID)
	if err != nil {
		return nil, userID, err
	}
	return process, userID, nil
}
