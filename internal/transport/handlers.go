package transport

import (
	"errors"
	"net/http"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	pricing service.PricingService
	design  service.DesignService
	orders  service.OrderService
}

func NewHandler(pricing service.PricingService, design service.DesignService, orders service.OrderService) *Handler {
	return &Handler{pricing: pricing, design: design, orders: orders}
}

// errorStatus maps service errors onto HTTP status codes.
func errorStatus(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrSessionNotFound),
		errors.Is(err, entity.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrUnknownProduct),
		errors.Is(err, entity.ErrUnknownColor),
		errors.Is(err, entity.ErrUnknownSize),
		errors.Is(err, entity.ErrUnknownRegion),
		errors.Is(err, entity.ErrUnknownSide),
		errors.Is(err, entity.ErrUnknownDirection),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrUndecodableImage),
		errors.Is(err, entity.ErrImageTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrDesignConfirmationRequired),
		errors.Is(err, entity.ErrUploadSuperseded):
		return http.StatusConflict
	case errors.Is(err, entity.ErrDeliveryFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}

func sideParam(c *gin.Context) (entity.Side, bool) {
	side, err := entity.ParseSide(c.Param("side"))
	if err != nil {
		abortWithError(c, err)
		return "", false
	}
	return side, true
}
