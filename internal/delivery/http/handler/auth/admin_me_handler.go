package auth

import "github.com/gofiber/fiber/v2"

// AdminMeHandler echoes the identity carried by the verified token so
// the frontend can restore its session after a reload.
type AdminMeHandler struct{}

func NewAdminMeHandler() *AdminMeHandler {
	return &AdminMeHandler{}
}

func (h *AdminMeHandler) Handle(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":    c.Locals("admin_id"),
		"email": c.Locals("admin_email"),
		"role":  "admin",
	})
}
