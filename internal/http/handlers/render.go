package handlers

import "github.com/gofiber/fiber/v2"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// Pick up the token the CSRF middleware put into Locals; fall back to
	// the double-submit cookie so hidden form fields are never empty.
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	// Theme preference is attached by middleware in main
	theme, _ := c.Locals("theme").(string)
	if theme == "" {
		theme = "light"
	}
	data["Theme"] = theme
	return c.Render(tmpl, data)
}
