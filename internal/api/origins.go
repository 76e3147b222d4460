package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 下拉框的默认选中项；数据集中不存在时退回第一个签发国
const preferredDefaultOrigin = "United States"

type originsResponse struct {
	Items   []string `json:"items"`   // 字典序
	Default string   `json:"default"` // 默认选中项
}

// ListOrigins 获取全部签发国
// GET /api/origins
func (h *Handler) ListOrigins(c *gin.Context) {
	items := h.table.Origins()

	defaultOrigin := ""
	if h.table.HasOrigin(preferredDefaultOrigin) {
		defaultOrigin = preferredDefaultOrigin
	} else if len(items) > 0 {
		defaultOrigin = items[0]
	}

	c.JSON(http.StatusOK, originsResponse{
		Items:   items,
		Default: defaultOrigin,
	})
}
