package api

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crebi6/passport2/internal/aggregator"
	"github.com/crebi6/passport2/internal/exporter"
)

// 下载令牌有效期
const exportDownloadTTL = 10 * time.Minute

type exportRequest struct {
	Origin string `json:"origin"`
}

type exportResponse struct {
	Token    string `json:"token"`
	FileName string `json:"fileName"`
	Total    int    `json:"total"`
}

// Export 导出选定签发国的护照报告
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if req.Origin == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 origin 参数"})
		return
	}
	if !h.table.HasOrigin(req.Origin) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "数据集中不存在该签发国"})
		return
	}

	res := aggregator.Compute(h.table, req.Origin)

	exp := exporter.NewExporter(h.colors)
	f, err := exp.Export(res)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("生成报告失败: %v", err)})
		return
	}
	defer f.Close()

	fileName := fmt.Sprintf("passport-report-%s-%s.xlsx",
		sanitizeFileName(req.Origin), time.Now().Format("20060102-150405"))
	filePath := filepath.Join(h.exportDir, fileName)

	if err := f.SaveAs(filePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("保存报告失败: %v", err)})
		return
	}

	token := h.downloads.put(filePath, req.Origin, exportDownloadTTL)

	c.JSON(http.StatusOK, exportResponse{
		Token:    token,
		FileName: fileName,
		Total:    res.Stats.Total,
	})
}

// DownloadExport 下载已导出的报告
// GET /api/export/download/:token
//
// 令牌一次性使用，下载后即失效
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接不存在或已过期"})
		return
	}
	h.downloads.delete(token)

	c.FileAttachment(item.filePath, filepath.Base(item.filePath))
}

// sanitizeFileName 国家名里的空格和路径分隔符不能进文件名
func sanitizeFileName(name string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(name)
}
