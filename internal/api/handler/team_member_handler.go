package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-dashboard/internal/dto"
	"portfolio-dashboard/internal/service"
	"portfolio-dashboard/pkg/utils"
)

type TeamMemberHandler struct {
	memberService service.TeamMemberService
}

func NewTeamMemberHandler(memberService service.TeamMemberService) *TeamMemberHandler {
	return &TeamMemberHandler{memberService: memberService}
}

// Add 添加团队成员
// @Summary 添加团队成员
// @Tags Team
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param request body dto.AddTeamMemberRequest true "添加成员请求"
// @Success 200 {object} utils.Response{data=model.TeamMember}
// @Router /api/v1/project/{id}/team-members [post]
func (h *TeamMemberHandler) Add(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	var req dto.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
		return
	}

	member, err := h.memberService.Add(projectID, &req)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, member)
}

// List 获取团队成员列表
// @Summary 获取团队成员列表
// @Tags Team
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Success 200 {object} utils.Response{data=[]model.TeamMember}
// @Router /api/v1/project/{id}/team-members [get]
func (h *TeamMemberHandler) List(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的项目ID")
		return
	}

	members, err := h.memberService.List(projectID)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, members)
}

// Delete 删除团队成员
// @Summary 删除团队成员
// @Tags Team
// @Accept json
// @Produce json
// @Param id path int64 true "项目ID"
// @Param memberId path int64 true "成员ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/project/{id}/team-members/{memberId} [delete]
func (h *TeamMemberHandler) Delete(c *gin.Context) {
	memberID, ok := parseIDParam(c, "memberId")
	if !ok {
		utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", "无效的成员ID")
		return
	}

	if err := h.memberService.Delete(memberID); err != nil {
		utils.Error(c, err)
		return
	}

	utils.SuccessWithMessage(c, "删除成功", nil)
}
