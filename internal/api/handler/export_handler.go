package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/utils"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportProject 导出单项目
// @Summary 导出单项目（含全部从属数据）
// @Tags Export
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param format query string false "导出格式 json|csv" default(json)
// @Success 200 {string} string "导出内容"
// @Router /api/v1/project/{id}/export [get]
func (h *ExportHandler) ExportProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	data, contentType, err := h.exportService.ExportProject(projectID, c.Query("format"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// ExportAll 导出全部项目到文件
// @Summary 导出全部项目到导出目录
// @Tags Export
// @Accept json
// @Produce json
// @Param format query string false "导出格式 json|csv"
// @Success 200 {object} utils.Response
// @Router /api/v1/export [post]
func (h *ExportHandler) ExportAll(c *gin.Context) {
	path, err := h.exportService.ExportToFile(c.Query("format"))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, gin.H{"path": path})
}
