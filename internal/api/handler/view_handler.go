package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/view"
	"portfolio-dashboard/pkg/utils"
)

type ViewHandler struct {
	engine *view.Engine
}

func NewViewHandler(engine *view.Engine) *ViewHandler {
	return &ViewHandler{engine: engine}
}

// SetSignalRequest 信号写入请求
type SetSignalRequest struct {
	Name  string      `json:"name" binding:"required"`
	Value interface{} `json:"value"`
}

// Regions 获取全部区域当前片段
// @Summary 获取全部视图区域的当前片段
// @Tags View
// @Accept json
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/v1/view/regions [get]
func (h *ViewHandler) Regions(c *gin.Context) {
	utils.Success(c, h.engine.Regions())
}

// SetSignal 写入信号
// @Summary 写入信号并返回变更的区域片段
// @Tags View
// @Accept json
// @Produce json
// @Param request body SetSignalRequest true "信号写入请求"
// @Success 200 {object} utils.Response
// @Router /api/v1/view/signals [post]
func (h *ViewHandler) SetSignal(c *gin.Context) {
	var req SetSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	changed, err := h.engine.SetSignal(req.Name, req.Value)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, changed)
}

// ParseRoute 解析路由
// @Summary 解析前端路由路径
// @Tags View
// @Accept json
// @Produce json
// @Param path query string true "路由路径"
// @Success 200 {object} utils.Response{data=view.Route}
// @Router /api/v1/view/route [get]
func (h *ViewHandler) ParseRoute(c *gin.Context) {
	utils.Success(c, view.ParseRoute(c.Query("path")))
}
