package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/utils"
)

type MilestoneHandler struct {
	milestoneService service.MilestoneService
}

func NewMilestoneHandler(milestoneService service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// Add 添加里程碑
// @Summary 添加里程碑
// @Tags Milestone
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param request body dto.AddMilestoneRequest true "添加里程碑请求"
// @Success 200 {object} utils.Response{data=model.Milestone}
// @Router /api/v1/project/{id}/milestones [post]
func (h *MilestoneHandler) Add(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	var req dto.AddMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	milestone, err := h.milestoneService.Add(projectID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, milestone)
}

// List 获取里程碑列表
// @Summary 获取里程碑列表（按开始日期升序）
// @Tags Milestone
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} utils.Response{data=[]model.Milestone}
// @Router /api/v1/project/{id}/milestones [get]
func (h *MilestoneHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	milestones, err := h.milestoneService.List(projectID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, milestones)
}

// Update 更新里程碑
// @Summary 更新里程碑（整行替换语义）
// @Tags Milestone
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param milestoneId path int64 true "里程碑ID"
// @Param request body dto.AddMilestoneRequest true "更新里程碑请求"
// @Success 200 {object} utils.Response{data=model.Milestone}
// @Router /api/v1/project/{id}/milestones/{milestoneId} [put]
func (h *MilestoneHandler) Update(c *gin.Context) {
	milestoneID, ok := parseIDParam(c, "milestoneId")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的里程碑ID")
		return
	}

	var req dto.AddMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	milestone, err := h.milestoneService.Update(milestoneID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, milestone)
}

// Delete 删除里程碑
// @Summary 删除里程碑
// @Tags Milestone
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param milestoneId path int64 true "里程碑ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/project/{id}/milestones/{milestoneId} [delete]
func (h *MilestoneHandler) Delete(c *gin.Context) {
	milestoneID, ok := parseIDParam(c, "milestoneId")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的里程碑ID")
		return
	}

	if err := h.milestoneService.Delete(milestoneID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}
