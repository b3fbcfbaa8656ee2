package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/learnhub/learnhub/internal/domain/errors"
	"github.com/learnhub/learnhub/internal/server/http/dto"
)

// PrefsHandler serves display preferences.
type PrefsHandler struct {
	facade PrefsFacade
}

// NewPrefsHandler creates PrefsHandler instance.
func NewPrefsHandler(facade PrefsFacade) *PrefsHandler {
	return &PrefsHandler{facade: facade}
}

// Theme handles GET /api/prefs/theme.
func (h *PrefsHandler) Theme(c *gin.Context) {
	theme, err := h.facade.Theme(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: theme})
}

// SetTheme handles PUT /api/prefs/theme.
func (h *PrefsHandler) SetTheme(c *gin.Context) {
	var req dto.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetTheme(c.Request.Context(), req.Theme); err != nil {
		if errors.Is(err, domainErrors.ErrUnsupportedTheme) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
