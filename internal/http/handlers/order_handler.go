package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"motomart/internal/domain"
	applog "motomart/internal/log"
	"motomart/internal/services"
	"motomart/internal/validate"
)

type OrderHandler struct {
	Cart  *services.CartService
	Order *services.OrderService
	// Delay simulates payment processing before the confirmation redirect.
	Delay time.Duration
}

func (h *OrderHandler) ensureSID(c *fiber.Ctx) string {
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

func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	sid := h.ensureSID(c)
	cv := h.Cart.View(sid)
	if len(cv.Lines) == 0 {
		return render(c, "cart", fiber.Map{"Cart": cv})
	}
	return render(c, "checkout", fiber.Map{"Cart": cv})
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	sid := h.ensureSID(c)

	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return h.reject(c, "name", "Enter your name (up to 60 characters)")
	}
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return h.reject(c, "email", "Enter a valid email address")
	}
	phone, ok := validate.Phone(c.FormValue("phone"))
	if !ok {
		return h.reject(c, "phone", "Enter a valid 10-digit mobile number")
	}
	line1, ok := validate.Name(c.FormValue("line1"))
	if !ok {
		return h.reject(c, "line1", "Enter your address")
	}
	city, ok := validate.Name(c.FormValue("city"))
	if !ok {
		return h.reject(c, "city", "Enter your city")
	}
	state, ok := validate.Name(c.FormValue("state"))
	if !ok {
		return h.reject(c, "state", "Enter your state")
	}
	pin, ok := validate.PIN(c.FormValue("postalCode"))
	if !ok {
		return h.reject(c, "postalCode", "Enter a valid 6-digit PIN code")
	}

	details := domain.OrderDetails{
		Name:  name,
		Email: email,
		Phone: phone,
		Address: domain.Address{
			Line1:      line1,
			Line2:      c.FormValue("line2"),
			City:       city,
			State:      state,
			PostalCode: pin,
		},
	}

	// Cosmetic processing pause, outside the core.
	if h.Delay > 0 {
		time.Sleep(h.Delay)
	}

	o, err := h.Order.Place(sid, details)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Redirect("/cart")
		}
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not place your order. Please try again."})
	}
	applog.Audit(c, "order.place", map[string]any{
		"order_id": o.ID,
		"items":    len(o.Lines),
		"total":    o.Total,
	})
	return c.Redirect("/order/" + o.ID)
}

// Confirmation shows the placed order to the session that placed it.
func (h *OrderHandler) Confirmation(c *fiber.Ctx) error {
	oid := c.Params("id")
	o, ok := h.Order.Get(oid)
	if !ok || o.SessionID != c.Cookies("sid") {
		if ok {
			applog.Security(c, "access.denied.order", map[string]any{"order_id": oid})
		}
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}
	return render(c, "order", fiber.Map{"Order": o})
}

func (h *OrderHandler) reject(c *fiber.Ctx, field, msg string) error {
	applog.Security(c, "validation.fail", map[string]any{"field": field})
	sid := h.ensureSID(c)
	c.Status(fiber.StatusBadRequest)
	return render(c, "checkout", fiber.Map{
		"Cart": h.Cart.View(sid),
		"Err":  msg,
	})
}
