package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/learnhub/learnhub/internal/domain/errors"
)

// CatalogHandler serves the program catalog.
type CatalogHandler struct {
	facade PlatformFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade PlatformFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/programs. The listing is open to everyone.
func (h *CatalogHandler) List(c *gin.Context) {
	programs, err := h.facade.Programs(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, programs)
}

// Detail handles GET /api/programs/:slug. The detail is gated behind the
// program's tier through the entitlement predicate.
func (h *CatalogHandler) Detail(c *gin.Context) {
	program, err := h.facade.ProgramBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	if !h.facade.HasRole(program.Tier) {
		c.Status(http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, program)
}
