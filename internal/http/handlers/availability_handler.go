package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"motomart/internal/services"
	"motomart/internal/validate"
)

type AvailabilityHandler struct {
	Catalog *services.CatalogService
}

// Check answers the product pages' stock probe as JSON.
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("productId"))
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing productId",
		})
	}
	id, ok := validate.ID(raw)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid productId",
		})
	}
	avail, ok := h.Catalog.Availability(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown product",
		})
	}
	return c.JSON(avail)
}
