package api

import (
	"net/http"

	resdto "cafe-reservation/internal/handler/dto/response"
	"cafe-reservation/internal/handler/httperr"
	"cafe-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List cafes
// @Description List all cafes
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CafeResponse
// @Router /cafes [get]
func (h *CatalogHandler) ListCafes(c *gin.Context) {
	cafes, err := h.catalogQueries.ListCafes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCafeViews(cafes))
}

// @Summary List cafe slots
// @Description List the recurring time slots of a cafe
// @Tags catalog
// @Produce json
// @Param id path string true "Cafe ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Router /cafes/{id}/slots [get]
func (h *CatalogHandler) ListSlots(c *gin.Context) {
	cafeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cafe ID format", nil)
		return
	}

	slots, err := h.catalogQueries.ListSlots(c.Request.Context(), cafeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}
