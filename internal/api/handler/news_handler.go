package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/utils"
)

type NewsHandler struct {
	newsService service.NewsService
}

func NewNewsHandler(newsService service.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// Add 添加项目动态
// @Summary 添加项目动态
// @Tags News
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param request body dto.AddNewsRequest true "添加动态请求"
// @Success 200 {object} utils.Response{data=model.NewsItem}
// @Router /api/v1/project/{id}/news [post]
func (h *NewsHandler) Add(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	var req dto.AddNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	item, err := h.newsService.Add(projectID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, item)
}

// List 获取项目动态列表
// @Summary 获取项目动态列表（按日期倒序）
// @Tags News
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} utils.Response{data=[]model.NewsItem}
// @Router /api/v1/project/{id}/news [get]
func (h *NewsHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	items, err := h.newsService.List(projectID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, items)
}

// Delete 删除项目动态
// @Summary 删除项目动态
// @Tags News
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param newsId path int64 true "动态ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/project/{id}/news/{newsId} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	newsID, ok := parseIDParam(c, "newsId")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的动态ID")
		return
	}

	if err := h.newsService.Delete(newsID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}
