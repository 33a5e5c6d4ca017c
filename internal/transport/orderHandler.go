package transport

import (
	"net/http"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SubmitOrder(c *gin.Context) {
	var form entity.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.orders.Submit(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
