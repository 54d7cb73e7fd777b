package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	applog "motomart/internal/log"
	"motomart/internal/services"
	"motomart/internal/validate"
)

type CartHandler struct {
	Cart *services.CartService
}

func (h *CartHandler) ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	return render(c, "cart", fiber.Map{"Cart": h.Cart.View(sid)})
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	qty := validate.Qty(c.FormValue("qty"))
	if err := h.Cart.Add(sid, pid, qty); err != nil {
		if errors.Is(err, services.ErrUnknownProduct) {
			return c.Status(404).Render("notfound", fiber.Map{"Message": "This bike is no longer available"})
		}
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": pid})
		return c.Status(fiber.StatusInternalServerError).SendString("Could not add to cart")
	}
	applog.Info(c, "cart.add", map[string]any{"product": pid, "qty": qty})
	return c.Redirect("/cart")
}

// Update sets a line's quantity; zero removes the line.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if c.FormValue("qty") == "0" {
		h.Cart.Remove(sid, pid)
	} else {
		h.Cart.SetQuantity(sid, pid, validate.Qty(c.FormValue("qty")))
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	h.Cart.Remove(sid, pid)
	return c.Redirect("/cart")
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	h.Cart.Clear(sid)
	applog.Info(c, "cart.clear", nil)
	return c.Redirect("/cart")
}
