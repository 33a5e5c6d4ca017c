package transport

import (
	"time"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/service"
	"github.com/Hunterthief/Weave-Wonder-sub000/internal/transport/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("phone", service.ValidatePhone); err != nil {
			logrus.Fatalf("register phone validation: %v", err)
		}
	}
}

func InitRoutes(h *Handler, orderTimeout time.Duration) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logger())

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.MaxMultipartMemory = 16 << 20

	router.GET("/catalog", h.GetCatalog)
	router.GET("/shipping", h.GetShipping)
	router.POST("/quote", h.Quote)

	router.GET("/orders/:id", h.GetOrder)

	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.GetSession)
		sessions.POST("/:id/order", middleware.Timeout(orderTimeout), h.SubmitOrder)
		sessions.POST("/:id/sides/:side/design", h.UploadDesign)
		sessions.DELETE("/:id/sides/:side/design", h.ClearDesign)
		sessions.POST("/:id/sides/:side/gesture", h.Gesture)
		sessions.POST("/:id/sides/:side/align/:direction", h.Align)
		sessions.GET("/:id/sides/:side/proof", h.Proof)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "weave-wonder-designer",
		})
	})
	return router
}
