package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/s-204-cmd/Scholars-spotlight-india/database"
)

// HandleCheckHealth reports liveness and whether the backing store answers.
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if _, err := store.Exists(c.Context(), database.KeyColleges); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
