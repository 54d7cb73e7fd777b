package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"motomart/internal/cart"
	applog "motomart/internal/log"
	"motomart/internal/validate"
)

type PrefsHandler struct {
	Carts *cart.Manager
}

func (h *PrefsHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	return sid
}

// SetTheme persists the single stored preference value for the session.
func (h *PrefsHandler) SetTheme(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	theme, ok := validate.Theme(c.FormValue("theme"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "theme"})
		return c.Status(fiber.StatusBadRequest).SendString("invalid theme")
	}
	if err := h.Carts.SetTheme(sid, theme); err != nil {
		applog.Error(c, "prefs.theme.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not save preference")
	}
	applog.Audit(c, "prefs.theme", map[string]any{"theme": theme})
	back := c.Get("Referer")
	if back == "" {
		back = "/"
	}
	return c.Redirect(back)
}
