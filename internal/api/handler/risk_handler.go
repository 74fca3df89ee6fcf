package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/utils"
)

type RiskHandler struct {
	riskService service.RiskService
}

func NewRiskHandler(riskService service.RiskService) *RiskHandler {
	return &RiskHandler{riskService: riskService}
}

// Add 添加风险
// @Summary 添加风险（评分自动计算）
// @Tags Risk
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param request body dto.AddRiskRequest true "添加风险请求"
// @Success 200 {object} utils.Response{data=model.Risk}
// @Router /api/v1/project/{id}/risks [post]
func (h *RiskHandler) Add(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	var req dto.AddRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	risk, err := h.riskService.Add(projectID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, risk)
}

// List 获取风险列表
// @Summary 获取风险列表（支持状态过滤, 评分倒序）
// @Tags Risk
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param status query string false "状态过滤"
// @Success 200 {object} utils.Response{data=[]model.Risk}
// @Router /api/v1/project/{id}/risks [get]
func (h *RiskHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	var query dto.RiskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	risks, err := h.riskService.List(projectID, &query)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, risks)
}

// Update 更新风险
// @Summary 更新风险（整行替换, 评分重算）
// @Tags Risk
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param riskId path int64 true "风险ID"
// @Param request body dto.AddRiskRequest true "更新风险请求"
// @Success 200 {object} utils.Response{data=model.Risk}
// @Router /api/v1/project/{id}/risks/{riskId} [put]
func (h *RiskHandler) Update(c *gin.Context) {
	riskID, ok := parseIDParam(c, "riskId")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的风险ID")
		return
	}

	var req dto.AddRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	risk, err := h.riskService.Update(riskID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, risk)
}

// Delete 删除风险
// @Summary 删除风险
// @Tags Risk
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param riskId path int64 true "风险ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/project/{id}/risks/{riskId} [delete]
func (h *RiskHandler) Delete(c *gin.Context) {
	riskID, ok := parseIDParam(c, "riskId")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的风险ID")
		return
	}

	if err := h.riskService.Delete(riskID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}
