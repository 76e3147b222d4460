package api

import (
	"github.com/gin-gonic/gin"

	"github.com/crebi6/passport2/internal/dataset"
	"github.com/crebi6/passport2/internal/registry"
)

// Handler API 处理器
// table 与 colors 启动后只读，处理器本身无共享可变状态（下载令牌表除外）
type Handler struct {
	table     *dataset.Table
	colors    *registry.Registry
	exportDir string
	downloads *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(table *dataset.Table, colors *registry.Registry, exportDir string) *Handler {
	return &Handler{
		table:     table,
		colors:    colors,
		exportDir: exportDir,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 下拉框数据
	router.GET("/origins", h.ListOrigins)

	// 选择驱动的聚合视图（地图/饼图/统计/分组列表共用一个结果）
	router.GET("/passport", h.GetPassport)

	// 类别颜色
	router.GET("/colors", h.GetColors)

	// 报告导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
