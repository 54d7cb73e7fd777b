package handlers

import (
	"github.com/gofiber/fiber/v2"

	"motomart/internal/services"
)

type HomeHandler struct {
	Catalog *services.CatalogService
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Featured":   h.Catalog.Featured(4),
		"Categories": h.Catalog.Categories(),
		"Brands":     h.Catalog.Brands(),
	})
}

func (h *HomeHandler) Categories(c *fiber.Ctx) error {
	return render(c, "categories", fiber.Map{
		"Categories": h.Catalog.Categories(),
		"Counts":     h.Catalog.CountByCategory(),
	})
}
