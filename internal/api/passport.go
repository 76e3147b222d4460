package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crebi6/passport2/internal/aggregator"
)

// GetPassport 计算选定签发国的聚合视图
// GET /api/passport?origin=Kenya
//
// 未知签发国不是错误：返回 total=0 的空结果，由前端渲染空地图和零统计
func (h *Handler) GetPassport(c *gin.Context) {
	origin := c.Query("origin")
	if origin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 origin 参数"})
		return
	}

	// 每次请求全量重算，聚合是纯函数，结果不缓存
	res := aggregator.Compute(h.table, origin)
	c.JSON(http.StatusOK, res)
}
