package transport

import (
	"net/http"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.pricing.Catalog())
}

func (h *Handler) GetShipping(c *gin.Context) {
	c.JSON(http.StatusOK, h.pricing.Shipping())
}

func (h *Handler) Quote(c *gin.Context) {
	var sel entity.Selection
	if err := c.ShouldBindJSON(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.pricing.Quote(sel)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
