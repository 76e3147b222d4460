package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crebi6/passport2/internal/registry"
)

type colorsResponse struct {
	Colors       map[string]string `json:"colors"`
	DefaultColor string            `json:"defaultColor"`
}

// GetColors 获取类别颜色映射
// GET /api/colors
func (h *Handler) GetColors(c *gin.Context) {
	colors := make(map[string]string)
	for cat, color := range h.colors.Colors() {
		colors[string(cat)] = color
	}

	c.JSON(http.StatusOK, colorsResponse{
		Colors:       colors,
		DefaultColor: registry.DefaultColor,
	})
}
