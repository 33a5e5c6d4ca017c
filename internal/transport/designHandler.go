package transport

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Hunterthief/Weave-Wonder-sub000/internal/entity"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateSession(c *gin.Context) {
	c.JSON(http.StatusCreated, h.design.CreateSession())
}

func (h *Handler) GetSession(c *gin.Context) {
	session, err := h.design.GetSession(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) UploadDesign(c *gin.Context) {
	side, ok := sideParam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !isValidImageType(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type. Supported: jpg, jpeg, png, gif, webp"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	id := c.Param("id")
	view, err := h.design.UploadDesign(id, side, src)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.UploadResponse{SessionID: id, Placement: view})
}

func (h *Handler) ClearDesign(c *gin.Context) {
	side, ok := sideParam(c)
	if !ok {
		return
	}
	view, err := h.design.ClearDesign(c.Param("id"), side)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) Gesture(c *gin.Context) {
	side, ok := sideParam(c)
	if !ok {
		return
	}
	var ev entity.GestureEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.design.HandleGesture(c.Param("id"), side, ev)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) Align(c *gin.Context) {
	side, ok := sideParam(c)
	if !ok {
		return
	}
	view, err := h.design.Align(c.Param("id"), side, entity.Direction(c.Param("direction")))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) Proof(c *gin.Context) {
	side, ok := sideParam(c)
	if !ok {
		return
	}
	data, err := h.design.Proof(c.Param("id"), side, c.Query("product"), c.Query("color"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

func isValidImageType(ext string) bool {
	validTypes := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
	return validTypes[ext]
}
