package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/albumhub/album-api/internal/core/ports"
)

// ProfileHandler serves generated composite profiles.
type ProfileHandler struct {
	generator ports.ProfileGenerator
}

func NewProfileHandler(generator ports.ProfileGenerator) *ProfileHandler {
	return &ProfileHandler{generator: generator}
}

// Generate handles GET /api/profile/generate. Upstream failures are replaced
// by fallback values, so the only error path is a broken provider.
//
// @Summary      Generate a random composite profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  domain.CompositeProfile
// @Failure      429  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/profile/generate [get]
func (h *ProfileHandler) Generate(c echo.Context) error {
	profile, err := h.generator.Generate(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}
