package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Source      string `json:"source"`      // 数据来源
	LoadedAt    string `json:"loadedAt"`    // 加载时间
	Records     int    `json:"records"`     // 记录总数
	Origins     int    `json:"origins"`     // 签发国数量
	Categories  int    `json:"categories"`  // 签证要求类别数量
	Initialized bool   `json:"initialized"` // 是否有数据
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Source:      h.table.Source(),
		LoadedAt:    h.table.LoadedAt().Format(time.RFC3339),
		Records:     h.table.Len(),
		Origins:     len(h.table.Origins()),
		Categories:  len(h.table.Categories()),
		Initialized: h.table.Len() > 0,
	})
}
