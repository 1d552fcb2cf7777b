package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/analytics"
)

// ActivityHandler feed de actividad reciente.
type ActivityHandler struct {
	uc *analytics.ActivityUseCase
}

// NewActivityHandler construye el handler de actividad.
func NewActivityHandler(uc *analytics.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List GET /api/activities
// Siempre responde 200: ante un fallo de lectura el caso de uso devuelve
// lista vacía, nunca un error.
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetRecent(c.Context(), GetUserID(c)))
}
